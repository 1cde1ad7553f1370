package engine

import (
	"github.com/opencode-ai/themekit/brand"
	"github.com/opencode-ai/themekit/locale"
	"github.com/opencode-ai/themekit/tokens"
)

// State is the engine's single source of truth: the current brand,
// mode, locale, and the token snapshot derived from them. A State is
// immutable once published; every accepted mutation replaces it
// wholesale. Invariant between mutations:
// Tokens == Build(Brand.ResolveColors(DarkMode), direction(Locale)).
type State struct {
	Brand            brand.Brand
	DarkMode         bool
	Locale           locale.Tag
	SupportedLocales []locale.Localize
	Tokens           tokens.DesignTokens
}

// rebuildTokens derives the token snapshot the state invariant demands.
func rebuildTokens(st State) tokens.DesignTokens {
	colors := st.Brand.ResolveColors(st.DarkMode)
	direction := tokens.DirectionForLanguage(st.Locale.Language)
	return tokens.Build(colors, direction)
}
