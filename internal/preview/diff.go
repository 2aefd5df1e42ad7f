package preview

import (
	"strings"

	"github.com/hyperifyio/cliplens/internal/budget"
	"github.com/hyperifyio/cliplens/internal/clip"
)

const (
	diffCompactLines = 5
	diffFullLines    = 50
)

// DiffLineKind classifies a single diff line for styling.
type DiffLineKind string

const (
	DiffAddition DiffLineKind = "addition"
	DiffDeletion DiffLineKind = "deletion"
	DiffHunk     DiffLineKind = "hunk"
	DiffMeta     DiffLineKind = "meta"
	DiffContext  DiffLineKind = "context"
)

type DiffPreview struct {
	Lines     []DiffLine `json:"lines"`
	Truncated bool       `json:"truncated"`
}

type DiffLine struct {
	Kind DiffLineKind `json:"kind"`
	Text string       `json:"text"`
}

func extractDiff(content string, mode clip.DisplayMode) Preview {
	max := budget.Lines(mode.Compact, diffCompactLines, diffFullLines)
	lines, dropped := budget.ClipLines(content, max)
	out := make([]DiffLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, DiffLine{Kind: diffLineKind(line), Text: line})
	}
	return Preview{Kind: clip.KindDiff, Diff: &DiffPreview{
		Lines:     out,
		Truncated: dropped > 0,
	}}
}

func diffLineKind(line string) DiffLineKind {
	switch {
	case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
		return DiffAddition
	case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
		return DiffDeletion
	case strings.HasPrefix(line, "@@"):
		return DiffHunk
	case strings.HasPrefix(line, "diff"), strings.HasPrefix(line, "index"):
		return DiffMeta
	default:
		return DiffContext
	}
}
