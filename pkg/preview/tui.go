package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/viznest/chartstyle/chartstyle"
)

// Run launches the interactive preview: scrollable output, theme toggling,
// resize-aware. It blocks until the user quits.
func Run(cfg chartstyle.StyleConfig) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model behind Run.
type Model struct {
	cfg      chartstyle.StyleConfig
	theme    chartstyle.Theme
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel builds the live preview model starting on the light theme.
func NewModel(cfg chartstyle.StyleConfig) Model {
	vp := viewport.New(0, 0)
	return Model{cfg: cfg, theme: chartstyle.ThemeLight, viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.theme = m.nextTheme()
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // title bar + help line
		m.ready = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}
	title := titleStyle.Render("chartstyle")
	help := mutedStyle.Render("t: toggle theme   j/k: scroll   q: quit")
	return title + "\n" + m.viewport.View() + "\n" + help
}

// Theme returns the theme currently shown, for tests.
func (m Model) Theme() chartstyle.Theme {
	return m.theme
}

func (m *Model) refresh() {
	m.viewport.SetContent(Render(m.cfg, m.theme, m.width))
}

func (m Model) nextTheme() chartstyle.Theme {
	themes := chartstyle.Themes()
	for i, theme := range themes {
		if theme == m.theme {
			return themes[(i+1)%len(themes)]
		}
	}
	return chartstyle.ThemeLight
}
