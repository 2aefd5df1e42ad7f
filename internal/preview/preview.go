// Package preview turns a raw clip into a bounded, render-ready structure.
// Every extractor is a pure projection of the input string: no I/O, no
// retained state, and no failure mode other than degrading to the plain
// text preview.
package preview

import (
	"github.com/hyperifyio/cliplens/internal/classify"
	"github.com/hyperifyio/cliplens/internal/clip"
)

// Preview is a tagged union keyed by Kind. Exactly one variant pointer is
// set for the chosen kind.
type Preview struct {
	Kind clip.Kind `json:"kind"`

	JSON     *JSONPreview     `json:"json,omitempty"`
	Diff     *DiffPreview     `json:"diff,omitempty"`
	LaTeX    *LaTeXPreview    `json:"latex,omitempty"`
	Table    *TablePreview    `json:"table,omitempty"`
	Contact  *ContactPreview  `json:"contact,omitempty"`
	Code     *CodePreview     `json:"code,omitempty"`
	Markdown *MarkdownPreview `json:"markdown,omitempty"`
	HTML     *HTMLPreview     `json:"html,omitempty"`
	Text     *TextPreview     `json:"text,omitempty"`
	Files    *FilesPreview    `json:"files,omitempty"`
	Image    *ImagePreview    `json:"image,omitempty"`
}

// Render classifies a clip and runs the matching extractor. It is the single
// call path the presentation layer uses. Non-text coarse types map to fixed
// variants and never reach the text classifier.
func Render(c clip.RawClip, mode clip.DisplayMode) Preview {
	switch c.Type {
	case clip.CoarseFiles:
		return extractFiles(c.Content)
	case clip.CoarseImage:
		return Preview{Kind: clip.KindText, Image: &ImagePreview{Path: c.Content}}
	case clip.CoarseHTML:
		return extractHTML(c.Content, mode)
	}
	return Extract(c.Content, classify.Classify(c.Content, c.Type), mode)
}

// Extract runs the extractor for an already-chosen kind. Unknown kinds and
// internal parse failures degrade to the text preview; no path panics.
func Extract(content string, kind clip.Kind, mode clip.DisplayMode) Preview {
	switch kind {
	case clip.KindJSON:
		return extractJSON(content, mode)
	case clip.KindDiff:
		return extractDiff(content, mode)
	case clip.KindLaTeX:
		return extractLaTeX(content, mode)
	case clip.KindTable:
		return extractTable(content, mode)
	case clip.KindEmail:
		return extractEmail(content)
	case clip.KindPhone:
		return extractPhone(content)
	case clip.KindCode:
		return extractCode(content, mode)
	case clip.KindMarkdown:
		return extractMarkdown(content, mode)
	case clip.KindHTML:
		return extractHTML(content, mode)
	default:
		return extractText(content, mode)
	}
}
