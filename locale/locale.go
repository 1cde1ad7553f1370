// Package locale provides language tag types and the deterministic
// locale resolution used by the design state engine and exposed to
// host frameworks as their locale-negotiation strategy.
package locale

// Tag identifies a locale as a language code with an optional region,
// e.g. ("es", "MX") or ("en", ""). The zero Tag means "no locale".
type Tag struct {
	Language string
	Region   string
}

// IsZero reports whether the tag carries no locale at all.
func (t Tag) IsZero() bool {
	return t.Language == "" && t.Region == ""
}

// String renders the tag in BCP 47 form, e.g. "es-MX" or "en".
func (t Tag) String() string {
	if t.Region == "" {
		return t.Language
	}
	return t.Language + "-" + t.Region
}

// Localize pairs a supported locale with its human-readable name as
// shown in language pickers.
type Localize struct {
	Tag         Tag
	DisplayName string
}
