// Package styles converts live design tokens into lipgloss styles for
// the preview TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/tokens"
)

// Styles contains lipgloss styles derived from a token snapshot.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// Build converts a DesignTokens snapshot into lipgloss styles. It is
// called again on every state change; styles are cheap to rebuild.
func Build(t tokens.DesignTokens) Styles {
	colors := t.Colors

	return Styles{
		Title:   lipgloss.NewStyle().Foreground(color(colors.Brand.Main)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(color(colors.Neutral.TextPrimary)),
		Muted:   lipgloss.NewStyle().Foreground(color(colors.Neutral.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(color(colors.Interaction.Primary)),
		Panel:   lipgloss.NewStyle().Foreground(color(colors.Neutral.TextPrimary)).Background(color(colors.Neutral.Surface)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(color(colors.Neutral.Border)),
		Success: lipgloss.NewStyle().Foreground(color(colors.Messaging.Success)),
		Warning: lipgloss.NewStyle().Foreground(color(colors.Messaging.Warning)),
		Error:   lipgloss.NewStyle().Foreground(color(colors.Messaging.Error)),
		Info:    lipgloss.NewStyle().Foreground(color(colors.Messaging.Info)),
	}
}

// Swatch renders a colored block for a token value.
func Swatch(c tokens.Color) string {
	return lipgloss.NewStyle().Background(color(c)).Render("      ")
}

func color(c tokens.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
