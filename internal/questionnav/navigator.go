package questionnav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaxVisible caps how many labels are shown at once.
const MaxVisible = 9

const itemWidth = 10

var (
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(0, 1).Width(itemWidth)
	currentStyle = itemStyle.Background(lipgloss.Color("#00BFFF")).Foreground(lipgloss.Color("#000000"))
	cursorStyle  = itemStyle.Background(lipgloss.Color("#B3EBF2")).Foreground(lipgloss.Color("#000000"))
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// SelectedMsg is emitted when a label is chosen.
type SelectedMsg struct {
	Label string
}

// Navigator is a scrolling list of question labels with one current label.
type Navigator struct {
	labels  []string
	current string
	cursor  int
	offset  int

	// OnSelect is called with the chosen label before SelectedMsg is sent.
	OnSelect func(label string)
}

// New builds a navigator with the cursor on current, or on the first label
// when current is not in labels.
func New(labels []string, current string) Navigator {
	n := Navigator{
		labels:  append([]string(nil), labels...),
		current: current,
	}
	if i := n.indexOf(current); i >= 0 {
		n.cursor = i
	}
	n.scrollToCursor()
	return n
}

// Current returns the highlighted label.
func (n Navigator) Current() string {
	return n.current
}

// Cursor returns the label under the cursor.
func (n Navigator) Cursor() string {
	if n.cursor < 0 || n.cursor >= len(n.labels) {
		return ""
	}
	return n.labels[n.cursor]
}

// Visible returns how many rows are drawn.
func (n Navigator) Visible() int {
	if len(n.labels) < MaxVisible {
		return len(n.labels)
	}
	return MaxVisible
}

// Init implements tea.Model.
func (n Navigator) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and selects labels.
func (n Navigator) Update(msg tea.Msg) (Navigator, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(n.labels) == 0 {
		return n, nil
	}
	switch kmsg.String() {
	case "up", "k":
		n.move(-1)
	case "down", "j":
		n.move(1)
	case "pgup":
		n.move(-MaxVisible)
	case "pgdown":
		n.move(MaxVisible)
	case "home", "g":
		n.move(-len(n.labels))
	case "end", "G":
		n.move(len(n.labels))
	case "enter", " ":
		return n.Select(n.Cursor())
	}
	return n, nil
}

// Select makes label current and reports it. Unknown labels are ignored.
func (n Navigator) Select(label string) (Navigator, tea.Cmd) {
	i := n.indexOf(label)
	if i < 0 {
		return n, nil
	}
	n.current = label
	n.cursor = i
	n.scrollToCursor()
	if n.OnSelect != nil {
		n.OnSelect(label)
	}
	return n, func() tea.Msg { return SelectedMsg{Label: label} }
}

// View renders the visible window of labels.
func (n Navigator) View() string {
	if len(n.labels) == 0 {
		return frameStyle.Render(emptyStyle.Render("No questions"))
	}
	end := n.offset + n.Visible()
	rows := make([]string, 0, n.Visible())
	for i := n.offset; i < end; i++ {
		label := n.labels[i]
		style := itemStyle
		switch {
		case label == n.current:
			style = currentStyle
		case i == n.cursor:
			style = cursorStyle
		}
		rows = append(rows, style.Render(label))
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}

func (n *Navigator) move(delta int) {
	n.cursor += delta
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= len(n.labels) {
		n.cursor = len(n.labels) - 1
	}
	n.scrollToCursor()
}

func (n *Navigator) scrollToCursor() {
	visible := n.Visible()
	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	if n.cursor >= n.offset+visible {
		n.offset = n.cursor - visible + 1
	}
	if n.offset < 0 {
		n.offset = 0
	}
}

func (n Navigator) indexOf(label string) int {
	for i, l := range n.labels {
		if l == label {
			return i
		}
	}
	return -1
}
