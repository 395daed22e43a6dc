package questionnav

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAppQuitsOnSelection(t *testing.T) {
	app := NewApp(New(UniformLabels(1, 5), "T1 Q1"))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Fatalf("expected no command on cursor move")
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected selection command")
	}
	_, quit := app.Update(cmd())
	if quit == nil {
		t.Fatalf("expected quit command")
	}
	if app.Chosen() != "T1 Q2" {
		t.Fatalf("unexpected chosen label: %q", app.Chosen())
	}
	if app.View() != "" {
		t.Fatalf("expected empty view after quitting")
	}
}

func TestAppQuitWithoutSelection(t *testing.T) {
	app := NewApp(New(UniformLabels(1, 5), ""))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if app.Chosen() != "" {
		t.Fatalf("expected no chosen label, got %q", app.Chosen())
	}
}
