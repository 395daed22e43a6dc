package store

import (
	"time"

	"github.com/verte-zerg/examboard/internal/model"
)

// SampleRecords returns the demo dataset with update times relative to now.
func SampleRecords(now time.Time) []model.ExamRecord {
	return []model.ExamRecord{
		{
			ID:           1,
			Provider:     "AWS",
			Exam:         "Cloud Practitioner",
			ExamType:     "Actual",
			Attempts:     2,
			AverageScore: 78.5,
			Progress:     75,
			LatestGrade:  model.Grade{Score: 85, Total: 100},
			Status:       model.StatusPassed,
			UpdatedAt:    now,
		},
		{
			ID:           2,
			Provider:     "AWS",
			Exam:         "Solutions Architect",
			ExamType:     "Custom",
			Attempts:     1,
			AverageScore: 65.0,
			Progress:     50,
			LatestGrade:  model.Grade{Score: 65, Total: 100},
			Status:       model.StatusFailed,
			UpdatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           3,
			Provider:     "Google",
			Exam:         "Associate Cloud Engineer",
			ExamType:     "Actual",
			Attempts:     3,
			AverageScore: 88.33,
			Progress:     90,
			LatestGrade:  model.Grade{Score: 92, Total: 100},
			Status:       model.StatusPassed,
			UpdatedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:           4,
			Provider:     "Microsoft",
			Exam:         "Azure Fundamentals",
			ExamType:     "Custom",
			Attempts:     0,
			AverageScore: 0,
			Progress:     30,
			LatestGrade:  model.Grade{Score: 0, Total: 100},
			Status:       model.StatusNotAttempted,
			UpdatedAt:    now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:           5,
			Provider:     "Cisco",
			Exam:         "CCNA",
			ExamType:     "Actual",
			Attempts:     2,
			AverageScore: 77.5,
			Progress:     80,
			LatestGrade:  model.Grade{Score: 80, Total: 100},
			Status:       model.StatusPassed,
			UpdatedAt:    now.Add(-14 * 24 * time.Hour),
		},
	}
}
