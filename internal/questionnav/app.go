package questionnav

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

// App runs a Navigator as a standalone program that exits once a label is
// chosen.
type App struct {
	nav      Navigator
	chosen   string
	quitting bool
}

// NewApp wraps a navigator.
func NewApp(nav Navigator) *App {
	return &App{nav: nav}
}

// Chosen returns the selected label, or "" when the user quit without one.
func (a *App) Chosen() string {
	return a.chosen
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectedMsg:
		a.chosen = msg.Label
		a.quitting = true
		return a, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			a.quitting = true
			return a, tea.Quit
		}
	}
	var cmd tea.Cmd
	a.nav, cmd = a.nav.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.nav.View() + "\n" + helpStyle.Render("↑/↓ move  enter select  q quit")
}
