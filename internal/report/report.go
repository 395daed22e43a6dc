package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/verte-zerg/examboard/internal/table"
)

var (
	titleColor    = color.New(color.FgYellow, color.Bold)
	providerColor = color.New(color.FgCyan, color.Bold)
	mutedColor    = color.New(color.FgHiBlack)
)

// Options controls plain report rendering.
type Options struct {
	Now time.Time
	// IDs adds a leading id column.
	IDs bool
}

// Render prints one page of the dashboard as plain tables, one per provider.
func Render(w io.Writer, v table.View, opts Options) error {
	if _, err := titleColor.Fprintln(w, "Your Exam Progress"); err != nil {
		return err
	}
	summary := fmt.Sprintf("page %d/%d  providers %d  records %d  sort %s",
		v.Page, v.TotalPages, v.GroupCount, v.RecordCount, SortLabel(v.Sort))
	if _, err := mutedColor.Fprintln(w, summary); err != nil {
		return err
	}
	if len(v.Groups) == 0 {
		_, err := fmt.Fprintln(w, "No exams found.")
		return err
	}
	return RenderGroups(w, v.Groups, opts)
}

// RenderGroups prints each group as a provider heading and a table.
func RenderGroups(w io.Writer, groups []table.Group, opts Options) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	headers := make([]string, 0, len(Columns)+1)
	if opts.IDs {
		headers = append(headers, "ID")
	}
	for _, c := range Columns {
		headers = append(headers, c.Title)
	}
	for _, g := range groups {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if _, err := providerColor.Fprintln(w, g.Provider); err != nil {
			return err
		}
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(headers)
		tw.SetAutoFormatHeaders(false)
		tw.SetAutoWrapText(false)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, r := range g.Records {
			cells := Cells(r, now)
			if opts.IDs {
				cells = append([]string{fmt.Sprintf("%d", r.ID)}, cells...)
			}
			tw.Append(cells)
		}
		tw.Render()
	}
	return nil
}
