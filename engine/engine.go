// Package engine implements the reactive design-configuration store:
// it holds the current (brand, mode, locale, tokens) state, serializes
// mutations, and publishes each new snapshot to subscribers.
//
// All operations are synchronous and non-blocking. The engine is safe
// for multi-threaded hosts: a single mutex serializes mutations and
// reads, and listeners are invoked without the mutex held. Mutations
// attempted while a notification is being delivered are rejected with
// ErrReentrantMutation rather than queued or deadlocked.
package engine

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/brand"
	"github.com/opencode-ai/themekit/locale"
	"github.com/opencode-ai/themekit/logging"
)

// Engine errors.
var (
	ErrNilBrand           = errors.New("initial brand is required")
	ErrNoSupportedLocales = errors.New("at least one supported locale is required")
	ErrReentrantMutation  = errors.New("mutation attempted during notification delivery")
)

// Options configure engine construction.
type Options struct {
	// DarkMode selects the initial mode. Default: light.
	DarkMode bool

	// LocaleHint is the device-reported locale, if any. A zero tag
	// resolves to the first supported locale.
	LocaleHint locale.Tag

	// Logger overrides the default component logger.
	Logger *zerolog.Logger
}

// Engine is the authoritative holder of the design State.
type Engine struct {
	mu        sync.Mutex
	state     State
	subs      []subscription
	notifying atomic.Bool
	logger    zerolog.Logger
}

// New constructs an engine, resolving the initial locale against the
// supported set and computing the initial token snapshot. The
// supported set is copied; order defines the default locale. Returns
// ErrNoSupportedLocales when the set is empty.
func New(initial brand.Brand, supported []locale.Localize, opts Options) (*Engine, error) {
	if initial == nil {
		return nil, ErrNilBrand
	}
	if len(supported) == 0 {
		return nil, ErrNoSupportedLocales
	}

	logger := logging.Component("engine")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	st := State{
		Brand:            initial,
		DarkMode:         opts.DarkMode,
		SupportedLocales: slices.Clone(supported),
	}
	var match locale.Match
	st.Locale, match = locale.ResolveDetailed(opts.LocaleHint, st.SupportedLocales)
	st.Tokens = rebuildTokens(st)

	logger.Debug().
		Str("brand", initial.Name()).
		Bool("dark_mode", opts.DarkMode).
		Str("locale", st.Locale.String()).
		Str("locale_match", match.String()).
		Msg("engine constructed")

	return &Engine{state: st, logger: logger}, nil
}

// Current returns the latest completed snapshot. It never blocks on
// listener delivery.
func (e *Engine) Current() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ToggleTheme flips dark mode, recomputes tokens, and notifies. Two
// consecutive calls restore the original mode and token values.
func (e *Engine) ToggleTheme() (State, error) {
	st, err := e.mutate(func(st State) State {
		st.DarkMode = !st.DarkMode
		st.Tokens = rebuildTokens(st)
		return st
	})
	if err != nil {
		return st, err
	}
	e.logChange(ChangeThemeToggled, ThemeToggledPayload{DarkMode: st.DarkMode})
	return st, nil
}

// UpdateBrand replaces the brand and recomputes tokens for the current
// mode. It always recomputes and notifies, even when the new brand is
// the one already installed.
func (e *Engine) UpdateBrand(b brand.Brand) (State, error) {
	if b == nil {
		return e.Current(), ErrNilBrand
	}
	st, err := e.mutate(func(st State) State {
		st.Brand = b
		st.Tokens = rebuildTokens(st)
		return st
	})
	if err != nil {
		return st, err
	}
	e.logChange(ChangeBrandUpdated, BrandUpdatedPayload{Brand: b.Name()})
	return st, nil
}

// SetThemeLanguage resolves the requested locale against the supported
// set and installs the result. An unresolvable request falls back to
// the default locale; loading translations for the new locale is the
// caller's concern, so the fallback is not an error.
func (e *Engine) SetThemeLanguage(lang locale.Localize) (State, error) {
	var match locale.Match
	st, err := e.mutate(func(st State) State {
		st.Locale, match = locale.ResolveDetailed(lang.Tag, st.SupportedLocales)
		st.Tokens = rebuildTokens(st)
		return st
	})
	if err != nil {
		return st, err
	}
	e.logChange(ChangeLocaleChanged, LocaleChangedPayload{
		Requested: lang.Tag.String(),
		Resolved:  st.Locale.String(),
		Match:     match.String(),
	})
	return st, nil
}

// mutate applies a state transition under the mutex, then delivers the
// new snapshot to all subscribers in subscription order without the
// mutex held. Reentrant mutations (from within a listener) are
// rejected and leave the state untouched.
func (e *Engine) mutate(apply func(State) State) (State, error) {
	if e.notifying.Load() {
		return e.Current(), ErrReentrantMutation
	}

	e.mu.Lock()
	next := apply(e.state)
	e.state = next
	subs := slices.Clone(e.subs)
	e.mu.Unlock()

	e.notifying.Store(true)
	defer e.notifying.Store(false)
	for _, s := range subs {
		e.deliver(s, next)
	}
	return next, nil
}
