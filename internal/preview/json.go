package preview

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hyperifyio/cliplens/internal/budget"
	"github.com/hyperifyio/cliplens/internal/clip"
)

const (
	jsonCompactLines = 3
	jsonFullLines    = 15
)

// JSONPreview holds the pretty-printed document split into lines with the
// key and value spans pulled out so each can be styled independently.
type JSONPreview struct {
	Lines      []JSONLine `json:"lines"`
	TotalLines int        `json:"totalLines"`
	Truncated  bool       `json:"truncated"`
}

type JSONLine struct {
	Raw   string `json:"raw"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// keyValueRe matches a pretty-printed object member line: leading indent,
// a quoted key, then whatever literal or opener follows.
var keyValueRe = regexp.MustCompile(`^\s*"((?:[^"\\]|\\.)*)":\s?(.*)$`)

func extractJSON(content string, mode clip.DisplayMode) Preview {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &v); err != nil {
		// The classifier already validated the parse, so this is a defensive
		// path only; degrade to literal text rather than fail.
		return extractText(content, mode)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return extractText(content, mode)
	}
	all := strings.Split(string(pretty), "\n")
	max := budget.Lines(mode.Compact, jsonCompactLines, jsonFullLines)
	shown := all
	if len(all) > max {
		shown = all[:max]
	}
	lines := make([]JSONLine, 0, len(shown))
	for _, raw := range shown {
		line := JSONLine{Raw: raw}
		if m := keyValueRe.FindStringSubmatch(raw); m != nil {
			line.Key = m[1]
			line.Value = strings.TrimSuffix(m[2], ",")
		}
		lines = append(lines, line)
	}
	return Preview{Kind: clip.KindJSON, JSON: &JSONPreview{
		Lines:      lines,
		TotalLines: len(all),
		Truncated:  len(all) > max,
	}}
}
