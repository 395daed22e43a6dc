package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/examboard/internal/model"
)

func TestSortRecordsUpdatedDesc(t *testing.T) {
	records := []model.ExamRecord{rec(1, "AWS", 1), rec(2, "AWS", 2), rec(3, "Google", 3)}
	got := SortRecords(records, model.DefaultSort())
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
	assert.Equal(t, []int64{1, 2, 3}, ids(records), "input must not be reordered")
}

func TestSortRecordsStableOnTies(t *testing.T) {
	records := []model.ExamRecord{
		{ID: 1, Attempts: 2},
		{ID: 2, Attempts: 1},
		{ID: 3, Attempts: 2},
		{ID: 4, Attempts: 1},
		{ID: 5, Attempts: 2},
	}
	asc := SortRecords(records, model.SortConfig{Key: model.SortByAttempts, Direction: model.Asc})
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(asc))

	desc := SortRecords(records, model.SortConfig{Key: model.SortByAttempts, Direction: model.Desc})
	assert.Equal(t, []int64{1, 3, 5, 2, 4}, ids(desc))

	again := SortRecords(asc, model.SortConfig{Key: model.SortByAttempts, Direction: model.Asc})
	assert.Equal(t, ids(asc), ids(again))
}

func TestSortRecordsDescReversesAscWithoutTies(t *testing.T) {
	records := []model.ExamRecord{
		{ID: 1, AverageScore: 78.5},
		{ID: 2, AverageScore: 65},
		{ID: 3, AverageScore: 88.33},
		{ID: 4, AverageScore: 0},
	}
	asc := ids(SortRecords(records, model.SortConfig{Key: model.SortByAverageScore, Direction: model.Asc}))
	desc := ids(SortRecords(records, model.SortConfig{Key: model.SortByAverageScore, Direction: model.Desc}))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortRecordsByEveryKey(t *testing.T) {
	a := model.ExamRecord{ID: 1, Provider: "AWS", Exam: "A", ExamType: "Actual", Attempts: 1, AverageScore: 10, Progress: 10, LatestGrade: model.Grade{Score: 1, Total: 10}, Status: "Failed", UpdatedAt: baseTime}
	b := model.ExamRecord{ID: 2, Provider: "Cisco", Exam: "B", ExamType: "Custom", Attempts: 2, AverageScore: 20, Progress: 20, LatestGrade: model.Grade{Score: 9, Total: 10}, Status: "Passed", UpdatedAt: baseTime.Add(1)}
	for _, key := range model.SortKeys {
		got := SortRecords([]model.ExamRecord{b, a}, model.SortConfig{Key: key, Direction: model.Asc})
		assert.Equal(t, []int64{1, 2}, ids(got), "key %s", key)
	}
}

func TestSortRecordsUnknownKeyKeepsOrder(t *testing.T) {
	records := fiveRecords()
	got := SortRecords(records, model.SortConfig{Key: "nope", Direction: model.Desc})
	assert.Equal(t, ids(records), ids(got))
}

func TestSortRecordsZeroTotalGrade(t *testing.T) {
	records := []model.ExamRecord{
		{ID: 1, LatestGrade: model.Grade{Score: 5, Total: 10}},
		{ID: 2, LatestGrade: model.Grade{Score: 0, Total: 0}},
	}
	got := SortRecords(records, model.SortConfig{Key: model.SortByLatestGrade, Direction: model.Asc})
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestNextSort(t *testing.T) {
	tests := []struct {
		name    string
		current model.SortConfig
		key     model.SortKey
		want    model.SortConfig
	}{
		{"new key starts asc", model.DefaultSort(), model.SortByExam, model.SortConfig{Key: model.SortByExam, Direction: model.Asc}},
		{"active asc flips", model.SortConfig{Key: model.SortByExam, Direction: model.Asc}, model.SortByExam, model.SortConfig{Key: model.SortByExam, Direction: model.Desc}},
		{"active desc resets", model.DefaultSort(), model.SortByUpdated, model.SortConfig{Key: model.SortByUpdated, Direction: model.Asc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSort(tt.current, tt.key))
		})
	}
}
