package engine

import "github.com/google/uuid"

// Listener receives the new snapshot after every accepted mutation.
// Listeners run synchronously on the mutating goroutine and must not
// mutate the engine; reentrant mutations are rejected with
// ErrReentrantMutation.
type Listener func(State)

type subscription struct {
	id string
	fn Listener
}

// Subscribe registers a listener and returns its handle. Listeners are
// notified in subscription order, exactly once per accepted mutation.
func (e *Engine) Subscribe(fn Listener) string {
	id := uuid.NewString()

	e.mu.Lock()
	e.subs = append(e.subs, subscription{id: id, fn: fn})
	e.mu.Unlock()

	return id
}

// Unsubscribe removes the listener with the given handle. It reports
// whether a listener was removed.
func (e *Engine) Unsubscribe(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return true
		}
	}
	return false
}

// deliver invokes one listener, isolating panics so a failing listener
// cannot prevent delivery to the rest or corrupt engine state.
func (e *Engine) deliver(s subscription, st State) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("subscription_id", s.id).
				Interface("panic", r).
				Msg("listener panicked during notification")
		}
	}()
	s.fn(st)
}
