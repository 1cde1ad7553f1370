package engine

import (
	"context"

	"github.com/opencode-ai/themekit/tokens"
)

type ctxKey struct{}

// WithEngine returns a context carrying the engine. The engine is
// threaded through call sites explicitly so multiple engines (one per
// test, one per tenant) can coexist; there is no package-level
// singleton.
func WithEngine(ctx context.Context, e *Engine) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

// FromContext returns the engine carried by the context, if any.
func FromContext(ctx context.Context) (*Engine, bool) {
	e, ok := ctx.Value(ctxKey{}).(*Engine)
	return e, ok
}

// TokensFromContext is the token accessor for rendering code: the
// current token snapshot of the context's engine.
func TokensFromContext(ctx context.Context) (tokens.DesignTokens, bool) {
	e, ok := FromContext(ctx)
	if !ok {
		return tokens.DesignTokens{}, false
	}
	return e.Current().Tokens, true
}
