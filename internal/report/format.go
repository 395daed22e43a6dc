// Package report formats exam records for display.
package report

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/examboard/internal/model"
)

// Column titles in display order, paired with the field they sort by.
var Columns = []struct {
	Title string
	Key   model.SortKey
}{
	{"Exam", model.SortByExam},
	{"Type", model.SortByExamType},
	{"Attempts", model.SortByAttempts},
	{"Avg. Score", model.SortByAverageScore},
	{"Progress", model.SortByProgress},
	{"Latest Grade", model.SortByLatestGrade},
	{"Status", model.SortByStatus},
	{"Updated", model.SortByUpdated},
}

// UpdatedLabel renders a recency label such as "2 hours ago".
func UpdatedLabel(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	label := humanize.RelTime(t, now, "ago", "from now")
	if label == "now" {
		return "just now"
	}
	return label
}

// AverageLabel renders an average score with two decimals.
func AverageLabel(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}

// GradeLabel renders a grade as score/total.
func GradeLabel(g model.Grade) string {
	return fmt.Sprintf("%d/%d", g.Score, g.Total)
}

// ProgressLabel renders a progress percentage.
func ProgressLabel(progress int) string {
	return fmt.Sprintf("%d%%", progress)
}

// ProgressLevel buckets progress into "low" (<50), "mid" (<75) and "high".
func ProgressLevel(progress int) string {
	switch {
	case progress < 50:
		return "low"
	case progress < 75:
		return "mid"
	default:
		return "high"
	}
}

// Cells returns the display cells of a record in Columns order.
func Cells(r model.ExamRecord, now time.Time) []string {
	return []string{
		r.Exam,
		r.ExamType,
		fmt.Sprintf("%d", r.Attempts),
		AverageLabel(r.AverageScore),
		ProgressLabel(r.Progress),
		GradeLabel(r.LatestGrade),
		r.Status,
		UpdatedLabel(r.UpdatedAt, now),
	}
}

// SortLabel describes the active sort, e.g. "updated desc".
func SortLabel(cfg model.SortConfig) string {
	if cfg.Key == "" {
		return "none"
	}
	return fmt.Sprintf("%s %s", cfg.Key, cfg.Direction)
}
