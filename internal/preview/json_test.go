package preview

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/hyperifyio/cliplens/internal/clip"
)

func TestExtractJSONPretty(t *testing.T) {
	p := extractJSON(`{"a":1,"b":[1,2,3]}`, clip.DisplayMode{})
	if p.Kind != clip.KindJSON || p.JSON == nil {
		t.Fatalf("unexpected preview: %+v", p)
	}
	// 2-space indent expands the array onto its own lines:
	// {, "a": 1,, "b": [, 1, 2, 3, ], } = 8 lines.
	if p.JSON.TotalLines != 8 {
		t.Fatalf("TotalLines = %d, want 8", p.JSON.TotalLines)
	}
	if len(p.JSON.Lines) != 8 || p.JSON.Truncated {
		t.Fatalf("full mode shows all lines: %+v", p.JSON)
	}
	if p.JSON.Lines[1].Key != "a" || p.JSON.Lines[1].Value != "1" {
		t.Fatalf("key/value spans wrong: %+v", p.JSON.Lines[1])
	}
	if p.JSON.Lines[2].Key != "b" || p.JSON.Lines[2].Value != "[" {
		t.Fatalf("opener value span wrong: %+v", p.JSON.Lines[2])
	}
}

func TestExtractJSONCompactBudget(t *testing.T) {
	p := extractJSON(`{"a":1,"b":[1,2,3]}`, clip.DisplayMode{Compact: true})
	if len(p.JSON.Lines) != 3 || !p.JSON.Truncated || p.JSON.TotalLines != 8 {
		t.Fatalf("compact budget wrong: %+v", p.JSON)
	}
}

func TestExtractJSONFullBudget(t *testing.T) {
	// 20 keys pretty-print to 22 lines; full mode caps at 15 with the total
	// carried for the expand toggle.
	doc := map[string]int{}
	for i := 0; i < 20; i++ {
		doc[string(rune('a'+i))] = i
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	p := extractJSON(string(b), clip.DisplayMode{})
	if len(p.JSON.Lines) != 15 || !p.JSON.Truncated || p.JSON.TotalLines != 22 {
		t.Fatalf("full budget wrong: lines=%d truncated=%v total=%d",
			len(p.JSON.Lines), p.JSON.Truncated, p.JSON.TotalLines)
	}
}

// Re-serializing the parse and parsing again must yield a structurally
// equal value.
func TestJSONRoundTripIdempotent(t *testing.T) {
	src := `{"a":1,"b":[1,2,3],"c":{"d":null}}`
	var first any
	if err := json.Unmarshal([]byte(src), &first); err != nil {
		t.Fatal(err)
	}
	pretty, err := json.MarshalIndent(first, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	var second any
	if err := json.Unmarshal(pretty, &second); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip diverged:\n%v\n%v", first, second)
	}
}

// The classifier guarantees valid JSON, but a defensive caller passing
// garbage gets the text degradation, not a panic.
func TestExtractJSONDegradesToText(t *testing.T) {
	p := extractJSON("not json at all", clip.DisplayMode{})
	if p.Kind != clip.KindText || p.Text == nil {
		t.Fatalf("want text degradation, got %+v", p)
	}
}
