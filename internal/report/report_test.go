package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/verte-zerg/examboard/internal/model"
	"github.com/verte-zerg/examboard/internal/store"
	"github.com/verte-zerg/examboard/internal/table"
)

func TestUpdatedLabel(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{2 * time.Hour, "2 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{7 * 24 * time.Hour, "1 week ago"},
		{14 * 24 * time.Hour, "2 weeks ago"},
	}
	for _, tt := range tests {
		if got := UpdatedLabel(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("UpdatedLabel(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
	if got := UpdatedLabel(time.Time{}, now); got != "never" {
		t.Errorf("expected never for zero time, got %q", got)
	}
}

func TestProgressLevel(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, "low"},
		{49, "low"},
		{50, "mid"},
		{74, "mid"},
		{75, "high"},
		{100, "high"},
	}
	for _, tt := range tests {
		if got := ProgressLevel(tt.progress); got != tt.want {
			t.Errorf("ProgressLevel(%d) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestCells(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := store.SampleRecords(now)[2]
	got := Cells(r, now)
	want := []string{"Associate Cloud Engineer", "Actual", "3", "88.33%", "90%", "92/100", "Passed", "1 day ago"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected cells:\n got %v\nwant %v", got, want)
	}
}

func TestRenderPage(t *testing.T) {
	color.NoColor = true
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	e := table.New(store.SampleRecords(now), 2, model.DefaultSort())

	var buf bytes.Buffer
	if err := Render(&buf, e.View(), Options{Now: now, IDs: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Your Exam Progress", "page 1/2", "sort updated desc", "AWS", "Google", "Cloud Practitioner", "2 hours ago"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Microsoft") {
		t.Fatalf("page 1 should not include Microsoft:\n%s", out)
	}
	if strings.Index(out, "AWS") > strings.Index(out, "Google") {
		t.Fatalf("expected AWS before Google:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	color.NoColor = true
	e := table.New(nil, 2, model.DefaultSort())
	var buf bytes.Buffer
	if err := Render(&buf, e.View(), Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No exams found.") {
		t.Fatalf("expected empty message, got:\n%s", buf.String())
	}
}
