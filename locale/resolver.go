package locale

// Match describes how a requested locale was resolved against the
// supported set.
type Match int

const (
	// MatchDefault means the requested locale (or its absence) fell
	// back to the first supported entry.
	MatchDefault Match = iota

	// MatchLanguage means only the language component matched; the
	// first supported entry with that language won.
	MatchLanguage

	// MatchExact means language and region both matched.
	MatchExact
)

func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchLanguage:
		return "language"
	default:
		return "default"
	}
}

// Resolve maps a requested locale to the best-matching supported one.
// The policy, in order: a zero requested tag yields the declared
// default (the first supported entry); an exact (language, region)
// match wins; otherwise the first supported entry sharing the language
// wins; otherwise the default. Resolve is pure and deterministic, and
// silently falls back on mismatch.
//
// Resolve panics on an empty supported set; the engine rejects empty
// sets at construction, before any resolution happens.
func Resolve(requested Tag, supported []Localize) Tag {
	tag, _ := ResolveDetailed(requested, supported)
	return tag
}

// ResolveDetailed is Resolve plus the match kind, for callers that
// want fallbacks to be observable.
func ResolveDetailed(requested Tag, supported []Localize) (Tag, Match) {
	if len(supported) == 0 {
		panic("locale: empty supported set")
	}
	if requested.IsZero() {
		return supported[0].Tag, MatchDefault
	}
	for _, s := range supported {
		if s.Tag == requested {
			return s.Tag, MatchExact
		}
	}
	for _, s := range supported {
		if s.Tag.Language == requested.Language {
			return s.Tag, MatchLanguage
		}
	}
	return supported[0].Tag, MatchDefault
}
