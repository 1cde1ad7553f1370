package tokens

// ColorBrand holds the identity colors of the active brand.
type ColorBrand struct {
	Main     Color // Primary brand color
	Light    Color // Lighter companion shade
	Dark     Color // Darker companion shade
	Contrast Color // Text/icon color placed on Main
}

// ColorInteraction holds colors for interactive elements.
type ColorInteraction struct {
	Primary        Color
	PrimaryHover   Color
	PrimaryPressed Color
	Focus          Color
	Disabled       Color
}

// ColorNeutral holds background, surface, and text colors.
type ColorNeutral struct {
	Background    Color
	Surface       Color
	Border        Color
	TextPrimary   Color
	TextSecondary Color
	TextMuted     Color
}

// ColorMessaging holds status and feedback colors.
type ColorMessaging struct {
	Success Color
	Warning Color
	Error   Color
	Info    Color
}

// ColorTokens aggregates the four color groups for one (brand, mode)
// pair. A ColorTokens value is always mode-specific: every field was
// resolved for light or for dark, never a mix.
type ColorTokens struct {
	Brand       ColorBrand
	Interaction ColorInteraction
	Neutral     ColorNeutral
	Messaging   ColorMessaging

	// Dark records which mode this palette was resolved for.
	Dark bool
}
