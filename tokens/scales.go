package tokens

// Elevations defines the shadow elevation scale in logical pixels.
type Elevations struct {
	None   float64
	Low    float64
	Medium float64
	High   float64
}

// Spacings defines the spacing scale in logical pixels.
//
// The scale follows a geometric progression for visual harmony.
type Spacings struct {
	None float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
}

// Opacities defines opacity presets in the 0..1 range.
type Opacities struct {
	Disabled float64
	Hint     float64
	Overlay  float64
}

// BorderRadiuses defines corner radius presets in logical pixels.
type BorderRadiuses struct {
	None float64
	SM   float64
	MD   float64
	LG   float64
	Pill float64
}

// TextStyle describes one typographic role.
type TextStyle struct {
	Family     string
	Size       float64
	Weight     int
	LineHeight float64
}

// TextStyles defines the typographic roles of the design system.
type TextStyles struct {
	Display  TextStyle
	Headline TextStyle
	Title    TextStyle
	Body     TextStyle
	Label    TextStyle
	Caption  TextStyle
}

// Icons maps semantic icon roles to glyphs.
type Icons struct {
	Success      string
	Warning      string
	Error        string
	Info         string
	ChevronRight string
	ChevronDown  string
	Close        string
	Check        string
}

// Static tables. These are brand-independent; only colors vary by
// brand and mode.

var defaultElevations = Elevations{
	None:   0,
	Low:    2,
	Medium: 6,
	High:   12,
}

var defaultSpacings = Spacings{
	None: 0,
	XS:   4,
	SM:   8,
	MD:   16,
	LG:   24,
	XL:   40,
}

var defaultOpacities = Opacities{
	Disabled: 0.38,
	Hint:     0.60,
	Overlay:  0.54,
}

var defaultBorderRadiuses = BorderRadiuses{
	None: 0,
	SM:   4,
	MD:   8,
	LG:   16,
	Pill: 999,
}

var defaultTextStyles = TextStyles{
	Display:  TextStyle{Family: "Inter", Size: 40, Weight: 700, LineHeight: 1.15},
	Headline: TextStyle{Family: "Inter", Size: 28, Weight: 600, LineHeight: 1.25},
	Title:    TextStyle{Family: "Inter", Size: 20, Weight: 600, LineHeight: 1.3},
	Body:     TextStyle{Family: "Inter", Size: 16, Weight: 400, LineHeight: 1.5},
	Label:    TextStyle{Family: "Inter", Size: 14, Weight: 500, LineHeight: 1.4},
	Caption:  TextStyle{Family: "Inter", Size: 12, Weight: 400, LineHeight: 1.35},
}

var defaultIcons = Icons{
	Success:      "✓",
	Warning:      "△",
	Error:        "✗",
	Info:         "ℹ",
	ChevronRight: "›",
	ChevronDown:  "⌄",
	Close:        "×",
	Check:        "✓",
}
