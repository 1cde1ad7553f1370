package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Parse converts a BCP 47 string such as "es-MX" into a Tag. Script
// subtags and extensions are accepted but dropped; only the raw
// language and region survive, without inference.
func Parse(s string) (Tag, error) {
	t, err := language.Parse(s)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _, region := t.Raw()
	tag := Tag{Language: base.String()}
	if r := region.String(); r != "ZZ" {
		tag.Region = r
	}
	return tag, nil
}

// Matcher returns the locale-negotiation callback handed to host
// frameworks. Given the platform-reported locale preference list, it
// returns the first preference that resolves exactly or by language
// against the supported set, falling back to the declared default.
func Matcher(supported []Localize) func(platform []Tag) Tag {
	return func(platform []Tag) Tag {
		for _, p := range platform {
			if tag, match := ResolveDetailed(p, supported); match != MatchDefault {
				return tag
			}
		}
		return Resolve(Tag{}, supported)
	}
}
