package budget

import (
	"strings"
	"testing"
)

func TestTruncateChars(t *testing.T) {
	cases := []struct {
		in       string
		max      int
		want     string
		wantCut  bool
	}{
		{"hello", 10, "hello", false},
		{"hello", 5, "hello", false},
		{"hello", 3, "hel", true},
		{"hello", 0, "hello", false},
		{"hello", -1, "hello", false},
		{"", 3, "", false},
	}
	for _, c := range cases {
		got, cut := TruncateChars(c.in, c.max)
		if got != c.want || cut != c.wantCut {
			t.Fatalf("TruncateChars(%q, %d) = %q, %v; want %q, %v", c.in, c.max, got, cut, c.want, c.wantCut)
		}
	}
}

// Truncation must cut on rune boundaries, never mid-codepoint.
func TestTruncateCharsMultibyte(t *testing.T) {
	got, cut := TruncateChars("日本語テキスト", 3)
	if got != "日本語" || !cut {
		t.Fatalf("TruncateChars multibyte = %q, %v", got, cut)
	}
}

func TestClipLines(t *testing.T) {
	in := "a\nb\nc\nd"
	lines, dropped := ClipLines(in, 2)
	if len(lines) != 2 || lines[0] != "a" || dropped != 2 {
		t.Fatalf("ClipLines = %v, %d", lines, dropped)
	}
	lines, dropped = ClipLines(in, 10)
	if len(lines) != 4 || dropped != 0 {
		t.Fatalf("ClipLines under budget = %v, %d", lines, dropped)
	}
	lines, dropped = ClipLines(in, 0)
	if len(lines) != 4 || dropped != 0 {
		t.Fatalf("ClipLines unbounded = %v, %d", lines, dropped)
	}
}

func TestModeSelectors(t *testing.T) {
	if Lines(true, 3, 15) != 3 || Lines(false, 3, 15) != 15 {
		t.Fatal("Lines selector wrong")
	}
	if Chars(true, 150, 400) != 150 || Chars(false, 150, 400) != 400 {
		t.Fatal("Chars selector wrong")
	}
}

func TestClipLinesLargeInput(t *testing.T) {
	in := strings.Repeat("line\n", 10_000)
	lines, dropped := ClipLines(in, 50)
	if len(lines) != 50 || dropped != 10_000-50+1 {
		t.Fatalf("ClipLines large = %d lines, %d dropped", len(lines), dropped)
	}
}
