package tokens

// TextDirection is the layout direction derived from the resolved locale.
type TextDirection int

const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

func (d TextDirection) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// rtlLanguages lists ISO 639-1 codes written right-to-left.
var rtlLanguages = map[string]struct{}{
	"ar": {},
	"dv": {},
	"fa": {},
	"he": {},
	"ps": {},
	"sd": {},
	"ur": {},
	"yi": {},
}

// DirectionForLanguage returns the text direction for an ISO 639-1
// language code. Unknown languages default to left-to-right.
func DirectionForLanguage(language string) TextDirection {
	if _, ok := rtlLanguages[language]; ok {
		return DirectionRTL
	}
	return DirectionLTR
}

// DesignTokens is an immutable snapshot of every visual primitive for
// one (brand, mode, locale) combination. Mutations never edit a
// snapshot in place; the engine builds a fresh one.
type DesignTokens struct {
	Colors         ColorTokens
	Elevations     Elevations
	Spacings       Spacings
	Opacities      Opacities
	BorderRadiuses BorderRadiuses
	TextStyles     TextStyles
	Icons          Icons
	TextDirection  TextDirection
}

// Build combines a brand-resolved color palette with the static scale
// tables into a complete DesignTokens snapshot.
func Build(colors ColorTokens, direction TextDirection) DesignTokens {
	return DesignTokens{
		Colors:         colors,
		Elevations:     defaultElevations,
		Spacings:       defaultSpacings,
		Opacities:      defaultOpacities,
		BorderRadiuses: defaultBorderRadiuses,
		TextStyles:     defaultTextStyles,
		Icons:          defaultIcons,
		TextDirection:  direction,
	}
}
