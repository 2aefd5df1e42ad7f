package preview

import (
	"strings"

	"github.com/hyperifyio/cliplens/internal/budget"
	"github.com/hyperifyio/cliplens/internal/classify"
	"github.com/hyperifyio/cliplens/internal/clip"
)

const (
	tableCompactRows = 2
	tableFullRows    = 19
)

type TablePreview struct {
	Delimiter string     `json:"delimiter"`
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
	Remaining int        `json:"remaining"`
}

// extractTable re-derives the delimiter exactly as the classifier did, so
// the two can never disagree. All lines are split, not just the three the
// classifier probed; ragged late rows pass through as-is.
func extractTable(content string, mode clip.DisplayMode) Preview {
	delim, ok := classify.TableDelimiter(content)
	if !ok {
		return extractText(content, mode)
	}
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	header := splitRow(lines[0], delim)
	data := lines[1:]
	max := budget.Lines(mode.Compact, tableCompactRows, tableFullRows)
	shown := data
	if len(data) > max {
		shown = data[:max]
	}
	rows := make([][]string, 0, len(shown))
	for _, line := range shown {
		rows = append(rows, splitRow(line, delim))
	}
	name := "comma"
	if delim == classify.DelimiterTab {
		name = "tab"
	}
	return Preview{Kind: clip.KindTable, Table: &TablePreview{
		Delimiter: name,
		Header:    header,
		Rows:      rows,
		Remaining: len(data) - len(shown),
	}}
}

func splitRow(line string, delim classify.Delimiter) []string {
	cells := strings.Split(line, string(rune(delim)))
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
