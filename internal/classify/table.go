package classify

import "strings"

// Delimiter is the cell separator detected for table-shaped content.
type Delimiter rune

const (
	DelimiterTab   Delimiter = '\t'
	DelimiterComma Delimiter = ','
)

// TableDelimiter reports whether content is table-shaped and with which
// delimiter. Uniformity is checked over the first three lines only (or all
// lines when fewer): tab counts must be equal and positive, else comma
// counts under the same rule. Tab wins when both would qualify. Rows past
// the third line are not checked here; the table extractor tolerates ragged
// late rows, a deliberate permissiveness inherited from the original
// heuristic.
func TableDelimiter(content string) (Delimiter, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return 0, false
	}
	probe := lines
	if len(probe) > 3 {
		probe = probe[:3]
	}
	if uniformCount(probe, "\t") {
		return DelimiterTab, true
	}
	if uniformCount(probe, ",") {
		return DelimiterComma, true
	}
	return 0, false
}

func uniformCount(lines []string, sep string) bool {
	want := strings.Count(lines[0], sep)
	if want == 0 {
		return false
	}
	for _, line := range lines[1:] {
		if strings.Count(line, sep) != want {
			return false
		}
	}
	return true
}

func isTable(s string) bool {
	_, ok := TableDelimiter(s)
	return ok
}
