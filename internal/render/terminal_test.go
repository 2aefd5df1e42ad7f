package render

import (
	"strings"
	"testing"

	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/preview"
)

func TestTerminalDiffColors(t *testing.T) {
	p := preview.Render(clip.RawClip{
		Content: "diff --git a/x b/x\n@@ -1 +1 @@\n-old\n+new",
		Type:    clip.CoarseText,
	}, clip.DisplayMode{})
	out := Terminal(p)
	if !strings.Contains(out, ansiGreen+"+new") {
		t.Fatalf("addition not colored: %q", out)
	}
	if !strings.Contains(out, ansiRed+"-old") {
		t.Fatalf("deletion not colored: %q", out)
	}
}

func TestTerminalContact(t *testing.T) {
	p := preview.Render(clip.RawClip{Content: "user@example.com", Type: clip.CoarseText}, clip.DisplayMode{})
	out := Terminal(p)
	if !strings.Contains(out, "mailto:user@example.com") {
		t.Fatalf("mailto target missing: %q", out)
	}
}

func TestTerminalTable(t *testing.T) {
	p := preview.Render(clip.RawClip{Content: "a,b\n1,2\n3,4", Type: clip.CoarseText}, clip.DisplayMode{})
	out := Terminal(p)
	if !strings.Contains(out, "a | b") || !strings.Contains(out, "1 | 2") {
		t.Fatalf("table layout wrong: %q", out)
	}
}

func TestTerminalFilesAndImage(t *testing.T) {
	p := preview.Render(clip.RawClip{Content: `["/a","/b"]`, Type: clip.CoarseFiles}, clip.DisplayMode{})
	if out := Terminal(p); !strings.Contains(out, "/a") || !strings.Contains(out, "/b") {
		t.Fatalf("files output wrong: %q", out)
	}
	p = preview.Render(clip.RawClip{Content: "/shot.png", Type: clip.CoarseImage}, clip.DisplayMode{})
	if out := Terminal(p); !strings.Contains(out, "/shot.png") {
		t.Fatalf("image output wrong: %q", out)
	}
}

// Styling failures and plain inputs must still produce output, never panic.
func TestTerminalTotal(t *testing.T) {
	inputs := []clip.RawClip{
		{Content: "", Type: clip.CoarseText},
		{Content: "# md", Type: clip.CoarseText},
		{Content: "fn main() {}", Type: clip.CoarseText},
		{Content: "$$x$$", Type: clip.CoarseText},
		{Content: "<p>hi</p>", Type: clip.CoarseHTML},
	}
	for _, c := range inputs {
		_ = Terminal(preview.Render(c, clip.DisplayMode{}))
	}
}
