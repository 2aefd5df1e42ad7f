// Package tags derives quick auxiliary tags at capture time. Tags are
// orthogonal to content classification: a clip can be tagged #url and still
// classify as plain text.
package tags

import (
	"strings"
)

// Detect returns the tags that apply to content, in a fixed order, or nil
// when none do.
func Detect(content string) []string {
	var out []string
	if strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://") {
		out = append(out, "#url")
	}
	if strings.Contains(content, "@") && strings.Contains(content, ".") && !strings.Contains(content, " ") {
		out = append(out, "#email")
	}
	if isHexColor(content) {
		out = append(out, "#color")
	}
	if strings.Contains(content, "{") && strings.Contains(content, "}") &&
		(strings.Contains(content, ";") || strings.Contains(content, "fn ") || strings.Contains(content, "def ")) {
		out = append(out, "#code")
	}
	return out
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsFilePath reports whether content looks like a single absolute path,
// used to suggest the files coarse type for pasted paths. Existence on disk
// is deliberately not checked here; that is the enrichment layer's job.
func IsFilePath(content string) bool {
	t := strings.TrimSpace(content)
	if t == "" || strings.Contains(t, "\n") {
		return false
	}
	// Windows drive prefix
	if len(t) >= 3 && isASCIILetter(t[0]) && t[1] == ':' && (t[2] == '\\' || t[2] == '/') {
		return true
	}
	// Unix absolute path, excluding protocol-relative //host forms
	return strings.HasPrefix(t, "/") && !strings.HasPrefix(t, "//")
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
