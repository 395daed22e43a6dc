// Package dashboard provides the Bubble Tea results dashboard.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/examboard/internal/model"
	"github.com/verte-zerg/examboard/internal/report"
	"github.com/verte-zerg/examboard/internal/table"
)

// RecordDeleter persists delete commands. The dashboard applies a command to
// its table only after the deleter succeeds.
type RecordDeleter interface {
	DeleteRecords(ctx context.Context, ids []int64) (int64, error)
	DeleteAllRecords(ctx context.Context) (int64, error)
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	groupStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#2A2A2A"))
	actionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3333")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FF3333")).
			Padding(1, 2)

	statusStyles = map[string]lipgloss.Style{
		model.StatusPassed:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		model.StatusFailed:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252")),
		model.StatusNotAttempted: lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")),
	}
	otherStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54F"))

	progressFills = map[string]string{
		"low":  "#FF4D4D",
		"mid":  "#FFA700",
		"high": "#ABF701",
	}
)

// Options configures a dashboard model.
type Options struct {
	Deleter        RecordDeleter
	GroupCollapsed bool
	// Now overrides the clock used for recency labels.
	Now func() time.Time
}

type lineKind int

const (
	lineGroup lineKind = iota
	lineRecord
)

type line struct {
	kind     lineKind
	provider string
	count    int
	record   model.ExamRecord
}

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	engine  *table.Engine
	deleter RecordDeleter
	now     func() time.Time

	keys  keyMap
	help  help.Model
	pager paginator.Model
	bars  map[string]progress.Model

	defaultCollapsed bool
	collapsed        map[string]bool

	cursor        int
	confirmDelete bool
	errMsg        string
	notice        string

	width  int
	height int
}

// NewModel constructs a dashboard over engine.
func NewModel(engine *table.Engine, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = 1
	pager.ActiveDot = groupStyle.Render("•")
	pager.InactiveDot = mutedStyle.Render("•")

	bars := make(map[string]progress.Model, len(progressFills))
	for level, fill := range progressFills {
		bars[level] = progress.New(
			progress.WithSolidFill(fill),
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
		)
	}

	m := &Model{
		engine:           engine,
		deleter:          opts.Deleter,
		now:              now,
		keys:             defaultKeyMap(),
		help:             help.New(),
		pager:            pager,
		bars:             bars,
		defaultCollapsed: opts.GroupCollapsed,
		collapsed:        map[string]bool{},
	}
	m.syncPager()
	return m
}

// Engine returns the table state driving the dashboard.
func (m *Model) Engine() *table.Engine {
	return m.engine
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.setPage(m.engine.Page() - 1)
	case key.Matches(msg, m.keys.NextPage):
		m.setPage(m.engine.Page() + 1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggleAtCursor()
	case key.Matches(msg, m.keys.Collapse):
		if ln, ok := m.currentLine(); ok {
			m.toggleGroup(ln.provider)
		}
	case key.Matches(msg, m.keys.SelectAll):
		m.engine.ToggleSelectAll()
	case key.Matches(msg, m.keys.Sort):
		m.sortColumn(msg.String())
	case key.Matches(msg, m.keys.SortProvider):
		m.engine.ToggleSort(model.SortByProvider)
		m.clampCursor()
	case key.Matches(msg, m.keys.DeleteRow):
		m.deleteRowAtCursor()
	case key.Matches(msg, m.keys.DeleteSelected):
		m.deleteSelected()
	case key.Matches(msg, m.keys.DeleteAll):
		if m.engine.CanDeleteAll() {
			m.confirmDelete = true
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		m.deleteAll()
	case "n", "N", "esc", "q":
		m.confirmDelete = false
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.confirmDelete {
		return m.renderConfirm()
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, m.renderBody(0), footer}, "\n")
	}
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := maxInt(1, m.height-headerHeight-footerHeight)
	return strings.Join([]string{
		fitLines(header, m.width, headerHeight),
		fitLines(m.renderBody(bodyHeight), m.width, bodyHeight),
		fitLines(footer, m.width, footerHeight),
	}, "\n")
}

// lines flattens the current page into group headers and visible rows.
func (m *Model) lines() []line {
	v := m.engine.View()
	var out []line
	for _, g := range v.Groups {
		out = append(out, line{kind: lineGroup, provider: g.Provider, count: len(g.Records)})
		if m.isCollapsed(g.Provider) {
			continue
		}
		for _, r := range g.Records {
			out = append(out, line{kind: lineRecord, provider: g.Provider, record: r})
		}
	}
	return out
}

func (m *Model) currentLine() (line, bool) {
	lines := m.lines()
	if m.cursor < 0 || m.cursor >= len(lines) {
		return line{}, false
	}
	return lines[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.lines())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setPage(page int) {
	before := m.engine.Page()
	if m.engine.SetPage(page) != before {
		m.cursor = 0
	}
	m.syncPager()
}

func (m *Model) syncPager() {
	m.pager.SetTotalPages(m.engine.TotalPages())
	m.pager.Page = m.engine.Page() - 1
}

func (m *Model) isCollapsed(provider string) bool {
	if c, ok := m.collapsed[provider]; ok {
		return c
	}
	return m.defaultCollapsed
}

func (m *Model) toggleGroup(provider string) {
	m.collapsed[provider] = !m.isCollapsed(provider)
	m.clampCursor()
}

func (m *Model) toggleAtCursor() {
	ln, ok := m.currentLine()
	if !ok {
		return
	}
	if ln.kind == lineGroup {
		m.toggleGroup(ln.provider)
		return
	}
	m.engine.ToggleRow(ln.record.ID)
}

func (m *Model) sortColumn(digit string) {
	if len(digit) != 1 {
		return
	}
	idx := int(digit[0] - '1')
	if idx < 0 || idx >= len(report.Columns) {
		return
	}
	m.engine.ToggleSort(report.Columns[idx].Key)
	m.clampCursor()
}

func (m *Model) deleteRowAtCursor() {
	ln, ok := m.currentLine()
	if !ok || ln.kind != lineRecord {
		return
	}
	if !m.persistDelete([]int64{ln.record.ID}) {
		return
	}
	if m.engine.DeleteRow(ln.record.ID) {
		m.notice = fmt.Sprintf("Deleted %q.", ln.record.Exam)
	}
	m.afterMutation()
}

func (m *Model) deleteSelected() {
	if !m.engine.CanDeleteSelected() {
		return
	}
	if !m.persistDelete(m.engine.SelectedIDs()) {
		return
	}
	removed := m.engine.DeleteSelected()
	m.notice = fmt.Sprintf("Deleted %d selected.", len(removed))
	m.afterMutation()
}

func (m *Model) deleteAll() {
	if !m.engine.CanDeleteAll() {
		return
	}
	if m.deleter != nil {
		if _, err := m.deleter.DeleteAllRecords(context.Background()); err != nil {
			m.errMsg = fmt.Sprintf("failed to delete records: %v", err)
			return
		}
	}
	n := m.engine.DeleteAll()
	m.errMsg = ""
	m.notice = fmt.Sprintf("Deleted all %d records.", n)
	m.afterMutation()
}

func (m *Model) persistDelete(ids []int64) bool {
	if m.deleter == nil {
		return true
	}
	if _, err := m.deleter.DeleteRecords(context.Background(), ids); err != nil {
		m.errMsg = fmt.Sprintf("failed to delete records: %v", err)
		return false
	}
	m.errMsg = ""
	return true
}

func (m *Model) afterMutation() {
	m.syncPager()
	m.clampCursor()
}
