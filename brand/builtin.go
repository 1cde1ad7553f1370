package brand

import "github.com/opencode-ai/themekit/tokens"

// Brands lists the built-in brands by name. Embedding applications may
// install their own Brand implementations at engine construction; this
// map only serves config lookup and the CLI.
var Brands = map[string]Brand{
	"default":       Default,
	"high-contrast": HighContrast,
}

// Lookup returns the built-in brand with the given name.
func Lookup(name string) (Brand, bool) {
	b, ok := Brands[name]
	return b, ok
}

// Default is the baseline themekit brand.
var Default = NewStatic("default",
	tokens.ColorTokens{
		Brand: tokens.ColorBrand{
			Main:     tokens.MustHex("#1D5BEF"),
			Light:    tokens.MustHex("#7AA2F7"),
			Dark:     tokens.MustHex("#0B3D91"),
			Contrast: tokens.MustHex("#FFFFFF"),
		},
		Interaction: tokens.ColorInteraction{
			Primary:        tokens.MustHex("#1D5BEF"),
			PrimaryHover:   tokens.MustHex("#3D72F2"),
			PrimaryPressed: tokens.MustHex("#1448C4"),
			Focus:          tokens.MustHex("#7AA2F7"),
			Disabled:       tokens.MustHex("#C3CCD9"),
		},
		Neutral: tokens.ColorNeutral{
			Background:    tokens.MustHex("#FFFFFF"),
			Surface:       tokens.MustHex("#F4F6FA"),
			Border:        tokens.MustHex("#D7DEE8"),
			TextPrimary:   tokens.MustHex("#10151C"),
			TextSecondary: tokens.MustHex("#3E4C5E"),
			TextMuted:     tokens.MustHex("#8B9AAE"),
		},
		Messaging: tokens.ColorMessaging{
			Success: tokens.MustHex("#1F883D"),
			Warning: tokens.MustHex("#9A6700"),
			Error:   tokens.MustHex("#CF222E"),
			Info:    tokens.MustHex("#0969DA"),
		},
	},
	tokens.ColorTokens{
		Brand: tokens.ColorBrand{
			Main:     tokens.MustHex("#5B8DEF"),
			Light:    tokens.MustHex("#7AA2F7"),
			Dark:     tokens.MustHex("#1D5BEF"),
			Contrast: tokens.MustHex("#0B0F14"),
		},
		Interaction: tokens.ColorInteraction{
			Primary:        tokens.MustHex("#5B8DEF"),
			PrimaryHover:   tokens.MustHex("#7AA2F7"),
			PrimaryPressed: tokens.MustHex("#3D72F2"),
			Focus:          tokens.MustHex("#7AA2F7"),
			Disabled:       tokens.MustHex("#3B4656"),
		},
		Neutral: tokens.ColorNeutral{
			Background:    tokens.MustHex("#0B0F14"),
			Surface:       tokens.MustHex("#121821"),
			Border:        tokens.MustHex("#223043"),
			TextPrimary:   tokens.MustHex("#E6EDF3"),
			TextSecondary: tokens.MustHex("#B4C0CF"),
			TextMuted:     tokens.MustHex("#8B9AAE"),
		},
		Messaging: tokens.ColorMessaging{
			Success: tokens.MustHex("#3FB950"),
			Warning: tokens.MustHex("#D29922"),
			Error:   tokens.MustHex("#F85149"),
			Info:    tokens.MustHex("#58A6FF"),
		},
	},
)

// HighContrast favors visibility on low-contrast displays.
var HighContrast = NewStatic("high-contrast",
	tokens.ColorTokens{
		Brand: tokens.ColorBrand{
			Main:     tokens.MustHex("#0000D6"),
			Light:    tokens.MustHex("#00A2FF"),
			Dark:     tokens.MustHex("#000080"),
			Contrast: tokens.MustHex("#FFFFFF"),
		},
		Interaction: tokens.ColorInteraction{
			Primary:        tokens.MustHex("#0000D6"),
			PrimaryHover:   tokens.MustHex("#0000FF"),
			PrimaryPressed: tokens.MustHex("#000080"),
			Focus:          tokens.MustHex("#B85C00"),
			Disabled:       tokens.MustHex("#6E6E6E"),
		},
		Neutral: tokens.ColorNeutral{
			Background:    tokens.MustHex("#FFFFFF"),
			Surface:       tokens.MustHex("#F5F5F5"),
			Border:        tokens.MustHex("#000000"),
			TextPrimary:   tokens.MustHex("#000000"),
			TextSecondary: tokens.MustHex("#1A1A1A"),
			TextMuted:     tokens.MustHex("#3F3F3F"),
		},
		Messaging: tokens.ColorMessaging{
			Success: tokens.MustHex("#006E00"),
			Warning: tokens.MustHex("#945700"),
			Error:   tokens.MustHex("#D50000"),
			Info:    tokens.MustHex("#0050B3"),
		},
	},
	tokens.ColorTokens{
		Brand: tokens.ColorBrand{
			Main:     tokens.MustHex("#00A2FF"),
			Light:    tokens.MustHex("#66CCFF"),
			Dark:     tokens.MustHex("#0050B3"),
			Contrast: tokens.MustHex("#000000"),
		},
		Interaction: tokens.ColorInteraction{
			Primary:        tokens.MustHex("#00A2FF"),
			PrimaryHover:   tokens.MustHex("#66CCFF"),
			PrimaryPressed: tokens.MustHex("#0050B3"),
			Focus:          tokens.MustHex("#FFD400"),
			Disabled:       tokens.MustHex("#6E6E6E"),
		},
		Neutral: tokens.ColorNeutral{
			Background:    tokens.MustHex("#000000"),
			Surface:       tokens.MustHex("#0A0A0A"),
			Border:        tokens.MustHex("#FFFFFF"),
			TextPrimary:   tokens.MustHex("#FFFFFF"),
			TextSecondary: tokens.MustHex("#E0E0E0"),
			TextMuted:     tokens.MustHex("#C0C0C0"),
		},
		Messaging: tokens.ColorMessaging{
			Success: tokens.MustHex("#00FF5A"),
			Warning: tokens.MustHex("#FFB000"),
			Error:   tokens.MustHex("#FF4040"),
			Info:    tokens.MustHex("#66CCFF"),
		},
	},
)
