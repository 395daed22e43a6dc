// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Status values known to the dashboard. Other values are rendered as-is.
const (
	StatusPassed       = "Passed"
	StatusFailed       = "Failed"
	StatusNotAttempted = "Not Attempted"
)

// Grade is a score out of a total.
type Grade struct {
	Score int
	Total int
}

// Ratio returns Score/Total, or 0 when Total is zero.
func (g Grade) Ratio() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.Score) / float64(g.Total)
}

// ExamRecord is one row of the results dashboard.
type ExamRecord struct {
	ID           int64
	Provider     string
	Exam         string
	ExamType     string
	Attempts     int
	AverageScore float64
	Progress     int
	LatestGrade  Grade
	Status       string
	UpdatedAt    time.Time
}

// SortKey names a sortable ExamRecord field.
type SortKey string

// Sortable fields.
const (
	SortByID           SortKey = "id"
	SortByProvider     SortKey = "provider"
	SortByExam         SortKey = "exam"
	SortByExamType     SortKey = "examType"
	SortByAttempts     SortKey = "attempts"
	SortByAverageScore SortKey = "averageScore"
	SortByProgress     SortKey = "progress"
	SortByLatestGrade  SortKey = "latestGrade"
	SortByStatus       SortKey = "status"
	SortByUpdated      SortKey = "updated"
)

// SortKeys lists every sortable field in column order.
var SortKeys = []SortKey{
	SortByID,
	SortByProvider,
	SortByExam,
	SortByExamType,
	SortByAttempts,
	SortByAverageScore,
	SortByProgress,
	SortByLatestGrade,
	SortByStatus,
	SortByUpdated,
}

// ParseSortKey matches a key case-insensitively.
func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, true
		}
	}
	return "", false
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// ParseSortDirection accepts "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, bool) {
	switch {
	case strings.EqualFold(s, string(Asc)):
		return Asc, true
	case strings.EqualFold(s, string(Desc)):
		return Desc, true
	}
	return "", false
}

// SortConfig is the single active sort.
type SortConfig struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort orders by most recently updated first.
func DefaultSort() SortConfig {
	return SortConfig{Key: SortByUpdated, Direction: Desc}
}

// DashboardConfig defines dashboard settings.
type DashboardConfig struct {
	PageSize       int
	Sort           SortConfig
	GroupCollapsed bool
}

// QuestionsConfig defines the default question navigator shape.
type QuestionsConfig struct {
	Topics   int
	PerTopic int
	Current  string
}
