package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/examboard/internal/model"
	"github.com/verte-zerg/examboard/internal/report"
)

func (m *Model) renderHeader() string {
	title := titleStyle.Render("Your Exam Progress")
	actions := m.renderActions()
	top := title + "  " + actions
	return top + "\n" + m.renderColumnHeader()
}

func (m *Model) renderActions() string {
	count := m.engine.SelectedCount()
	selected := fmt.Sprintf("[D] Delete Selected (%d)", count)
	if m.engine.CanDeleteSelected() {
		selected = actionStyle.Render(selected)
	} else {
		selected = disabledStyle.Render(selected)
	}
	all := "[X] Delete All"
	if m.engine.CanDeleteAll() {
		all = actionStyle.Render(all)
	} else {
		all = disabledStyle.Render(all)
	}
	return selected + "  " + all
}

func (m *Model) renderColumnHeader() string {
	sortCfg := m.engine.Sort()
	titles := make([]string, len(report.Columns))
	for i, c := range report.Columns {
		title := fmt.Sprintf("%d %s", i+1, c.Title)
		if c.Key == sortCfg.Key {
			title += " " + sortIndicator(sortCfg.Direction)
		}
		titles[i] = title
	}
	box := checkbox(m.engine.AllSelected())
	return headerStyle.Render(padCell(box, checkboxWidth) + " " + formatRow(titles, columnWidths))
}

func sortIndicator(dir model.SortDirection) string {
	if dir == model.Asc {
		return "▲"
	}
	return "▼"
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (m *Model) renderBody(height int) string {
	lines := m.lines()
	if len(lines) == 0 {
		return mutedStyle.Render("No exams found.")
	}
	rendered := make([]string, len(lines))
	for i, ln := range lines {
		var s string
		if ln.kind == lineGroup {
			s = m.renderGroupLine(ln)
		} else {
			s = m.renderRecordLine(ln.record)
		}
		if i == m.cursor {
			s = cursorStyle.Render(padLine(s, m.width))
		}
		rendered[i] = s
	}
	start, end := scrollWindow(len(rendered), m.cursor, height)
	return strings.Join(rendered[start:end], "\n")
}

func (m *Model) renderGroupLine(ln line) string {
	marker := "▾"
	if m.isCollapsed(ln.provider) {
		marker = "▸"
	}
	return groupStyle.Render(fmt.Sprintf("%s %s (%d)", marker, ln.provider, ln.count))
}

func (m *Model) renderRecordLine(r model.ExamRecord) string {
	cells := report.Cells(r, m.now())
	cells[4] = m.renderProgress(r.Progress)
	cells[6] = statusStyle(r.Status).Render(r.Status)
	box := checkbox(m.engine.IsSelected(r.ID))
	return padCell(box, checkboxWidth) + " " + formatRow(cells, columnWidths)
}

func (m *Model) renderProgress(value int) string {
	bar := m.bars[report.ProgressLevel(value)]
	pct := float64(value) / 100
	return bar.ViewAs(pct) + " " + report.ProgressLabel(value)
}

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return otherStatusStyle
}

func (m *Model) renderFooter() string {
	v := m.engine.View()
	pages := fmt.Sprintf("%s  Page %d/%d  Sort: %s", m.pager.View(), v.Page, v.TotalPages, report.SortLabel(v.Sort))
	parts := []string{pages, m.help.View(m.keys)}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderConfirm() string {
	body := strings.Join([]string{
		titleStyle.Render("Delete all records?"),
		fmt.Sprintf("%d records will be removed.", m.engine.Len()),
		mutedStyle.Render("y to confirm / n to cancel"),
	}, "\n")
	box := modalStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
