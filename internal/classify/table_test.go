package classify

import "testing"

func TestTableDelimiter(t *testing.T) {
	cases := []struct {
		name    string
		content string
		delim   Delimiter
		ok      bool
	}{
		{"comma uniform", "a,b\n1,2\n3,4", DelimiterComma, true},
		{"tab uniform", "a\tb\n1\t2", DelimiterTab, true},
		{"two lines suffice", "x,y\n1,2", DelimiterComma, true},
		{"single line", "a,b,c", 0, false},
		{"no delimiter", "abc\ndef", 0, false},
		{"ragged first three", "a,b\nc,d,e\nf,g", 0, false},
		{"zero counts", "abc\ndef\nghi", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			delim, ok := TableDelimiter(c.content)
			if ok != c.ok || delim != c.delim {
				t.Fatalf("TableDelimiter(%q) = %v, %v; want %v, %v", c.content, delim, ok, c.delim, c.ok)
			}
		})
	}
}

// Only the first three lines are probed; later rows may be ragged and the
// content still counts as a table. Deliberate permissiveness, kept from the
// original heuristic.
func TestTableDelimiterIgnoresLateRows(t *testing.T) {
	content := "a,b\nc,d\ne,f\nragged line without commas"
	delim, ok := TableDelimiter(content)
	if !ok || delim != DelimiterComma {
		t.Fatalf("TableDelimiter = %v, %v, want comma, true", delim, ok)
	}
}
