// Package table holds the dashboard table state: selection, sorting,
// grouping by provider, and pagination over groups.
package table

import (
	"sort"
	"strings"

	"github.com/verte-zerg/examboard/internal/model"
)

// SortRecords returns a sorted copy of records. Equal keys keep their input
// order. Unknown keys leave the order unchanged.
func SortRecords(records []model.ExamRecord, cfg model.SortConfig) []model.ExamRecord {
	out := append([]model.ExamRecord(nil), records...)
	if cfg.Key == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareRecords(out[i], out[j], cfg.Key)
		if cfg.Direction == model.Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// NextSort returns the sort after a header click on key: a new key starts
// ascending, and only an ascending active key flips to descending.
func NextSort(current model.SortConfig, key model.SortKey) model.SortConfig {
	dir := model.Asc
	if current.Key == key && current.Direction == model.Asc {
		dir = model.Desc
	}
	return model.SortConfig{Key: key, Direction: dir}
}

func compareRecords(a, b model.ExamRecord, key model.SortKey) int {
	switch key {
	case model.SortByID:
		return compareInt64(a.ID, b.ID)
	case model.SortByProvider:
		return strings.Compare(a.Provider, b.Provider)
	case model.SortByExam:
		return strings.Compare(a.Exam, b.Exam)
	case model.SortByExamType:
		return strings.Compare(a.ExamType, b.ExamType)
	case model.SortByAttempts:
		return compareInt64(int64(a.Attempts), int64(b.Attempts))
	case model.SortByAverageScore:
		return compareFloat(a.AverageScore, b.AverageScore)
	case model.SortByProgress:
		return compareInt64(int64(a.Progress), int64(b.Progress))
	case model.SortByLatestGrade:
		return compareFloat(a.LatestGrade.Ratio(), b.LatestGrade.Ratio())
	case model.SortByStatus:
		return strings.Compare(a.Status, b.Status)
	case model.SortByUpdated:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareFloat treats NaN as equal to everything.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
