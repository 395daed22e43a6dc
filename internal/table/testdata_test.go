package table

import (
	"time"

	"github.com/verte-zerg/examboard/internal/model"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func rec(id int64, provider string, updatedHours int) model.ExamRecord {
	return model.ExamRecord{
		ID:        id,
		Provider:  provider,
		Exam:      "exam",
		UpdatedAt: baseTime.Add(time.Duration(updatedHours) * time.Hour),
	}
}

func ids(records []model.ExamRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func fiveRecords() []model.ExamRecord {
	return []model.ExamRecord{
		rec(1, "AWS", 5),
		rec(2, "AWS", 4),
		rec(3, "Google", 3),
		rec(4, "Microsoft", 2),
		rec(5, "Cisco", 1),
	}
}
