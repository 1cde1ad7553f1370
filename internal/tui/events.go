// Package tui implements the themekit preview terminal interface. It
// is a host-framework adapter: it mutates the engine through its
// public operations and re-renders from the snapshots published on the
// engine's notification channel.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themekit/engine"
)

// StateChangeMsg wraps an engine snapshot for the TUI.
type StateChangeMsg struct {
	State engine.State
}

// subscribe bridges the engine's notification channel to the bubbletea
// program. The listener only forwards the snapshot; it never mutates
// the engine.
func subscribe(e *engine.Engine, program *tea.Program) string {
	return e.Subscribe(func(st engine.State) {
		program.Send(StateChangeMsg{State: st})
	})
}
