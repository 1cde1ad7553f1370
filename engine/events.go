package engine

// ChangeType categorizes accepted mutations for diagnostics.
type ChangeType string

const (
	ChangeThemeToggled  ChangeType = "theme.toggled"
	ChangeBrandUpdated  ChangeType = "brand.updated"
	ChangeLocaleChanged ChangeType = "locale.changed"
)

// ThemeToggledPayload describes a theme.toggled change.
type ThemeToggledPayload struct {
	DarkMode bool `json:"dark_mode"`
}

// BrandUpdatedPayload describes a brand.updated change.
type BrandUpdatedPayload struct {
	Brand string `json:"brand"`
}

// LocaleChangedPayload describes a locale.changed change, including
// whether the request resolved exactly or fell back.
type LocaleChangedPayload struct {
	Requested string `json:"requested"`
	Resolved  string `json:"resolved"`
	Match     string `json:"match"`
}

// logChange writes one structured log line per accepted mutation.
func (e *Engine) logChange(change ChangeType, payload any) {
	e.logger.Debug().
		Str("change", string(change)).
		Interface("payload", payload).
		Msg("design state changed")
}
