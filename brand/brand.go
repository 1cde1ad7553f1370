// Package brand defines the brand capability consumed by the design
// state engine, plus the built-in brands shipped with themekit.
package brand

import "github.com/opencode-ai/themekit/tokens"

// Brand produces a full color palette for a given mode. Implementations
// must be pure functions of the darkMode flag: resolving the same mode
// twice must yield identical palettes. The engine does not enforce
// this; a brand with hidden state breaks the engine's consistency
// guarantee.
type Brand interface {
	// Name identifies the brand for config lookup and diagnostics.
	Name() string

	// ResolveColors returns the mode-specific palette.
	ResolveColors(darkMode bool) tokens.ColorTokens
}

// Static is a Brand backed by fixed light and dark palettes. It is the
// common shape for brands declared as literal tables.
type Static struct {
	name  string
	light tokens.ColorTokens
	dark  tokens.ColorTokens
}

// NewStatic builds a Static brand. The Dark flag on each palette is set
// here so table literals cannot get it wrong.
func NewStatic(name string, light, dark tokens.ColorTokens) *Static {
	light.Dark = false
	dark.Dark = true
	return &Static{name: name, light: light, dark: dark}
}

func (b *Static) Name() string {
	return b.name
}

func (b *Static) ResolveColors(darkMode bool) tokens.ColorTokens {
	if darkMode {
		return b.dark
	}
	return b.light
}
