package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	checkboxWidth = 3
	progressWidth = 10
)

// Widths of the record columns, in report.Columns order.
var columnWidths = []int{26, 8, 8, 10, progressWidth + 5, 12, 13, 13}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i]))
	}
	return b.String()
}

// padCell truncates or pads a cell to width. Styled cells are measured by
// their visible width and never truncated.
func padCell(value string, width int) string {
	valueWidth := lipgloss.Width(value)
	if valueWidth == runewidth.StringWidth(value) && valueWidth > width {
		value = runewidth.Truncate(value, width, "…")
		valueWidth = runewidth.StringWidth(value)
	}
	if valueWidth >= width {
		return value
	}
	return value + strings.Repeat(" ", width-valueWidth)
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// scrollWindow returns the [start, end) range of n lines that keeps cursor
// visible within height lines.
func scrollWindow(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	if start > n-height {
		start = n - height
	}
	return start, start + height
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
