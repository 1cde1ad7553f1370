package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themekit/brand"
	"github.com/opencode-ai/themekit/engine"
	"github.com/opencode-ai/themekit/internal/tui/styles"
	"github.com/opencode-ai/themekit/locale"
)

const (
	minWidth  = 50
	minHeight = 14
)

// Run launches the preview program against an existing engine.
func Run(e *engine.Engine) error {
	program := tea.NewProgram(newModel(e), tea.WithAltScreen())

	id := subscribe(e, program)
	defer e.Unsubscribe(id)

	_, err := program.Run()
	return err
}

type model struct {
	engine *engine.Engine
	state  engine.State
	styles styles.Styles
	brands []brand.Brand
	width  int
	height int
}

func newModel(e *engine.Engine) model {
	st := e.Current()
	return model{
		engine: e,
		state:  st,
		styles: styles.Build(st.Tokens),
		brands: []brand.Brand{brand.Default, brand.HighContrast},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			m.engine.ToggleTheme()
		case "b":
			m.engine.UpdateBrand(m.nextBrand())
		case "l":
			m.engine.SetThemeLanguage(m.nextLocale())
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StateChangeMsg:
		m.state = msg.State
		m.styles = styles.Build(msg.State.Tokens)
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("Terminal too small (%dx%d). Resize to at least %dx%d.\n",
			m.width, m.height, minWidth, minHeight)
	}

	st := m.state
	mode := "light"
	if st.DarkMode {
		mode = "dark"
	}

	lines := []string{
		m.styles.Title.Render("themekit preview"),
		"",
		m.styles.Text.Render(fmt.Sprintf("Brand:     %s", st.Brand.Name())),
		m.styles.Text.Render(fmt.Sprintf("Mode:      %s", mode)),
		m.styles.Text.Render(fmt.Sprintf("Locale:    %s (%s)", st.Locale, st.Tokens.TextDirection)),
		"",
	}

	lines = append(lines, m.swatchLines()...)
	lines = append(lines, "",
		m.styles.Muted.Render("Shortcuts: d dark mode | b brand | l locale | q quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) swatchLines() []string {
	colors := m.state.Tokens.Colors

	row := func(label string, s string) string {
		return fmt.Sprintf("%s %s", s, m.styles.Muted.Render(label))
	}

	return []string{
		m.styles.Accent.Render("Palette"),
		row("brand.main       "+colors.Brand.Main.Hex(), styles.Swatch(colors.Brand.Main)),
		row("brand.contrast   "+colors.Brand.Contrast.Hex(), styles.Swatch(colors.Brand.Contrast)),
		row("neutral.background "+colors.Neutral.Background.Hex(), styles.Swatch(colors.Neutral.Background)),
		row("neutral.surface  "+colors.Neutral.Surface.Hex(), styles.Swatch(colors.Neutral.Surface)),
		row("messaging.success "+colors.Messaging.Success.Hex(), styles.Swatch(colors.Messaging.Success)),
		row("messaging.error  "+colors.Messaging.Error.Hex(), styles.Swatch(colors.Messaging.Error)),
	}
}

func (m model) nextBrand() brand.Brand {
	current := m.state.Brand.Name()
	for i, b := range m.brands {
		if b.Name() == current {
			return m.brands[(i+1)%len(m.brands)]
		}
	}
	return m.brands[0]
}

func (m model) nextLocale() locale.Localize {
	supported := m.state.SupportedLocales
	for i, l := range supported {
		if l.Tag == m.state.Locale {
			return supported[(i+1)%len(supported)]
		}
	}
	return supported[0]
}
