package dashboard

import "testing"

func TestFormatRowAlignsColumns(t *testing.T) {
	line := formatRow([]string{"CCNA", "Actual", "2"}, []int{6, 7, 3})
	if line != "CCNA   Actual  2  " {
		t.Fatalf("unexpected row line: %q", line)
	}
}

func TestPadCellTruncatesWideText(t *testing.T) {
	got := padCell("Associate Cloud Engineer", 10)
	if got != "Associate…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := padCell("日本語", 4); got != "日… " {
		t.Fatalf("unexpected wide truncation: %q", got)
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		n, cursor, height int
		start, end        int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 4, 5, 0, 5},
		{20, 5, 5, 1, 6},
		{20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		start, end := scrollWindow(tt.n, tt.cursor, tt.height)
		if start != tt.start || end != tt.end {
			t.Errorf("scrollWindow(%d, %d, %d) = %d, %d, want %d, %d", tt.n, tt.cursor, tt.height, start, end, tt.start, tt.end)
		}
	}
}
