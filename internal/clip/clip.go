// Package clip defines the immutable input and classification types shared
// by the classifier, the extractors, and the surfaces that consume them.
package clip

// CoarseType is the capture-time tag already attached to a clip before any
// content classification runs.
type CoarseType string

const (
	CoarseText  CoarseType = "text"
	CoarseImage CoarseType = "image"
	CoarseFiles CoarseType = "files"
	CoarseHTML  CoarseType = "html"
)

// RawClip is a captured clipboard payload. It is never mutated by the core.
type RawClip struct {
	Content string     `json:"content"`
	Type    CoarseType `json:"type"`
}

// Kind is the fine-grained classification computed for text-tagged clips.
// It is a closed set; Text is the universal fallback.
type Kind string

const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
	KindJSON     Kind = "json"
	KindDiff     Kind = "diff"
	KindLaTeX    Kind = "latex"
	KindTable    Kind = "table"
	KindEmail    Kind = "email"
	KindPhone    Kind = "phone"
	KindCode     Kind = "code"
	KindText     Kind = "text"
)

// DisplayMode scales every extractor's output budget. It never influences
// which Kind a clip classifies to.
type DisplayMode struct {
	Compact bool `json:"compact"`
}
