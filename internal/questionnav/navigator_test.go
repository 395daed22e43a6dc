package questionnav

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"T1 Q1", "T1 Q2", "T2 Q1"}, Labels([]int{2, 1}))
	assert.Equal(t, []string{"T2 Q1"}, Labels([]int{0, 1}))
	assert.Len(t, UniformLabels(3, 4), 12)
	assert.Nil(t, UniformLabels(0, 4))
}

func TestNewStartsAtCurrent(t *testing.T) {
	labels := UniformLabels(2, 10)
	n := New(labels, "T2 Q5")
	assert.Equal(t, "T2 Q5", n.Cursor())
	assert.Equal(t, MaxVisible, n.Visible())
	assert.Contains(t, n.View(), "T2 Q5")
	assert.NotContains(t, n.View(), "T1 Q6")

	n = New(labels, "missing")
	assert.Equal(t, "T1 Q1", n.Cursor())
	assert.Equal(t, "missing", n.Current())
}

func TestVisibleCapsShortLists(t *testing.T) {
	n := New([]string{"T1 Q1", "T1 Q2"}, "")
	assert.Equal(t, 2, n.Visible())
	assert.Equal(t, 0, New(nil, "").Visible())
	assert.Contains(t, New(nil, "").View(), "No questions")
}

func TestNavigateAndSelect(t *testing.T) {
	var picked []string
	n := New(UniformLabels(1, 20), "T1 Q1")
	n.OnSelect = func(label string) { picked = append(picked, label) }

	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyDown})
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "T1 Q3", n.Cursor())
	assert.Equal(t, "T1 Q1", n.Current())

	n, cmd := n.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectedMsg{Label: "T1 Q3"}, cmd())
	assert.Equal(t, "T1 Q3", n.Current())
	assert.Equal(t, []string{"T1 Q3"}, picked)
}

func TestScrollFollowsCursor(t *testing.T) {
	n := New(UniformLabels(1, 20), "")
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "T1 Q20", n.Cursor())
	view := n.View()
	assert.Contains(t, view, "T1 Q20")
	assert.Contains(t, view, "T1 Q12")
	assert.NotContains(t, view, "T1 Q11")

	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, "T1 Q1", n.Cursor())
	assert.True(t, strings.Contains(n.View(), "T1 Q1"))
}

func TestSelectUnknownLabel(t *testing.T) {
	n := New(UniformLabels(1, 3), "T1 Q2")
	n, cmd := n.Select("T9 Q9")
	assert.Nil(t, cmd)
	assert.Equal(t, "T1 Q2", n.Current())
}
