package preview

import (
	"encoding/json"

	"github.com/hyperifyio/cliplens/internal/budget"
	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/sanitize"
)

const (
	textCompactChars = 150
	textFullChars    = 400

	markdownCompactChars = 200

	htmlCompactChars = 300
)

type TextPreview struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
}

// MarkdownPreview carries the budgeted raw markdown; turning it into styled
// inline content is the presentation layer's job.
type MarkdownPreview struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
}

// HTMLPreview carries markup already stripped to the sanitizer's allow-list,
// safe for direct insertion downstream.
type HTMLPreview struct {
	Sanitized string `json:"sanitized"`
	Truncated bool   `json:"truncated"`
}

type FilesPreview struct {
	Paths []string `json:"paths"`
}

// ImagePreview carries the on-disk path; resolving it to a displayable
// resource URL and any OCR or palette enrichment happen outside the core.
type ImagePreview struct {
	Path string `json:"path"`
}

func extractText(content string, mode clip.DisplayMode) Preview {
	max := budget.Chars(mode.Compact, textCompactChars, textFullChars)
	body, truncated := budget.TruncateChars(content, max)
	return Preview{Kind: clip.KindText, Text: &TextPreview{
		Content:   body,
		Truncated: truncated,
	}}
}

func extractMarkdown(content string, mode clip.DisplayMode) Preview {
	body := content
	truncated := false
	if mode.Compact {
		body, truncated = budget.TruncateChars(content, markdownCompactChars)
	}
	return Preview{Kind: clip.KindMarkdown, Markdown: &MarkdownPreview{
		Content:   body,
		Truncated: truncated,
	}}
}

func extractHTML(content string, mode clip.DisplayMode) Preview {
	safe := sanitize.HTML(content)
	truncated := false
	if mode.Compact {
		safe, truncated = budget.TruncateChars(safe, htmlCompactChars)
	}
	return Preview{Kind: clip.KindHTML, HTML: &HTMLPreview{
		Sanitized: safe,
		Truncated: truncated,
	}}
}

// extractFiles parses the JSON-encoded path list a files clip carries.
// Malformed payloads degrade to a single explanatory entry instead of an
// error.
func extractFiles(content string) Preview {
	var paths []string
	if err := json.Unmarshal([]byte(content), &paths); err != nil || paths == nil {
		paths = []string{"Invalid file data"}
	}
	return Preview{Kind: clip.KindText, Files: &FilesPreview{Paths: paths}}
}
