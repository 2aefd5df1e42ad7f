package preview

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/cliplens/internal/clip"
)

const latexCompactSegments = 2

// MathSegmentType distinguishes display math, inline math, and the prose
// between them.
type MathSegmentType string

const (
	MathBlock  MathSegmentType = "block-math"
	MathInline MathSegmentType = "inline-math"
	MathText   MathSegmentType = "text"
)

type LaTeXPreview struct {
	Segments  []MathSegment `json:"segments"`
	Truncated bool          `json:"truncated"`
}

type MathSegment struct {
	Type    MathSegmentType `json:"type"`
	Content string          `json:"content"`
}

var (
	blockSpanRe  = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	inlineSpanRe = regexp.MustCompile(`\$([^$\n]+)\$`)
)

// extractLaTeX splits content into block-math, inline-math, and text
// segments in original left-to-right order. Block spans are carved out
// first so an inline scan can never bite into a $$ delimiter pair.
func extractLaTeX(content string, mode clip.DisplayMode) Preview {
	var segs []MathSegment
	rest := content
	for {
		loc := blockSpanRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			segs = append(segs, inlineSegments(rest)...)
			break
		}
		segs = append(segs, inlineSegments(rest[:loc[0]])...)
		segs = append(segs, MathSegment{Type: MathBlock, Content: strings.TrimSpace(rest[loc[2]:loc[3]])})
		rest = rest[loc[1]:]
	}
	truncated := false
	if mode.Compact && len(segs) > latexCompactSegments {
		segs = segs[:latexCompactSegments]
		truncated = true
	}
	return Preview{Kind: clip.KindLaTeX, LaTeX: &LaTeXPreview{
		Segments:  segs,
		Truncated: truncated,
	}}
}

func inlineSegments(s string) []MathSegment {
	var segs []MathSegment
	rest := s
	for {
		loc := inlineSpanRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			if t := rest; t != "" {
				segs = append(segs, MathSegment{Type: MathText, Content: t})
			}
			return segs
		}
		if before := rest[:loc[0]]; before != "" {
			segs = append(segs, MathSegment{Type: MathText, Content: before})
		}
		segs = append(segs, MathSegment{Type: MathInline, Content: strings.TrimSpace(rest[loc[2]:loc[3]])})
		rest = rest[loc[1]:]
	}
}
