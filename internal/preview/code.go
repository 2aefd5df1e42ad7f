package preview

import (
	"strings"

	"github.com/hyperifyio/cliplens/internal/budget"
	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/lang"
)

const codeCompactChars = 200

type CodePreview struct {
	Language  string `json:"language"`
	Content   string `json:"content"`
	LineCount int    `json:"lineCount"`
	Truncated bool   `json:"truncated"`
}

func extractCode(content string, mode clip.DisplayMode) Preview {
	language := lang.Guess(content)
	body := content
	truncated := false
	if mode.Compact {
		body, truncated = budget.TruncateChars(content, codeCompactChars)
	}
	return Preview{Kind: clip.KindCode, Code: &CodePreview{
		Language:  language,
		Content:   body,
		LineCount: strings.Count(content, "\n") + 1,
		Truncated: truncated,
	}}
}
