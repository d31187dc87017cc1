package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/starletters/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable([]string{"a", "bb"}, [][]string{{"1", "x"}, {"100", "💖"}}, map[int]bool{0: true})
	want := []string{
		"  a  bb",
		"  1  x",
		"100  💖",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestWriteHistory(t *testing.T) {
	start := time.Date(2026, 2, 14, 20, 0, 0, 0, time.Local)
	journeys := []model.Journey{
		{ID: 1, StartedAt: start, FinishedAt: start.Add(12*time.Minute + 5*time.Second), LettersRead: 20, CategoriesCompleted: 5, Hugs: 3},
		{ID: 2, StartedAt: start, FinishedAt: start.Add(90 * time.Second), LettersRead: 2, Skipped: true},
	}
	var buf bytes.Buffer
	if err := WriteHistory(&buf, journeys, false); err != nil {
		t.Fatalf("write history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Finished", "2026-02-14 20:12", "12m05s", "1m30s", "yes", "2 journeys, 1 read to the end, 3 hugs sent"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWriteHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHistory(&buf, nil, false); err != nil {
		t.Fatalf("write history: %v", err)
	}
	if !strings.Contains(buf.String(), "No journeys") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
