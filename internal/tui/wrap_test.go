package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("one two three", 7)
	want := "one two\nthree"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	got := wrapText("Dear you,\n\nhello", 20)
	want := "Dear you,\n\nhello"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextHardBreaksLongWords(t *testing.T) {
	got := wrapText("abcdefgh", 3)
	want := "abc\ndef\ngh"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextRespectsWideRunes(t *testing.T) {
	got := wrapText("💖💖💖 love", 4)
	for _, line := range strings.Split(got, "\n") {
		if runewidth.StringWidth(line) > 4 {
			t.Fatalf("line %q wider than 4", line)
		}
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := wrapText("unchanged", 0); got != "unchanged" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}
