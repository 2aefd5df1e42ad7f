// Package classify decides what kind of content a text clip holds. The
// decision is a total, deterministic function of the content and its coarse
// capture type: the same input always yields the same Kind, display
// parameters have no influence, and no input can make it fail.
package classify

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/lang"
)

// Ordered rules, first match wins. Structural markers (HTML tags, diff
// headers) are the least ambiguous and run first; contact and code checks
// are the most permissive and run last so they cannot shadow richer
// classifications.
var rules = []struct {
	kind  clip.Kind
	match func(s string) bool
}{
	{clip.KindHTML, isHTML},
	{clip.KindDiff, isDiff},
	{clip.KindJSON, isJSON},
	{clip.KindLaTeX, isLaTeX},
	{clip.KindMarkdown, isMarkdown},
	{clip.KindTable, isTable},
	{clip.KindEmail, isEmail},
	{clip.KindPhone, isPhone},
	{clip.KindCode, func(s string) bool { return lang.Guess(s) != "" }},
}

// Classify returns the Kind for a clip payload. Non-text coarse types are
// handled by dedicated preview paths and short-circuit to KindText here.
func Classify(content string, coarse clip.CoarseType) clip.Kind {
	if coarse != clip.CoarseText {
		return clip.KindText
	}
	for _, r := range rules {
		if r.match(content) {
			return r.kind
		}
	}
	return clip.KindText
}

// A bare leading '<' is not enough to call something HTML; the tag name must
// come from a fixed allow-list so comparison operators and XML-ish noise
// fall through.
var htmlTagRe = regexp.MustCompile(`^<\s*/?\s*(?i:html|head|body|div|span|p|h[1-6]|ul|ol|li|table|tr|td|th|form|input|button|a|img|br|hr|strong|em|b|i|u|script|style|link|meta)[\s/>]`)

func isHTML(s string) bool {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "<") {
		return false
	}
	return htmlTagRe.MatchString(t)
}

var hunkHeaderRe = regexp.MustCompile(`(?m)^@@ -\d+(,\d+)? \+\d+(,\d+)? @@`)

func isDiff(s string) bool {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "diff --git") || strings.HasPrefix(t, "--- ") {
		return true
	}
	if hunkHeaderRe.MatchString(s) {
		return true
	}
	var plus, minus bool
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			plus = true
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			minus = true
		}
		if plus && minus {
			return true
		}
	}
	return false
}

// isJSON requires a real parse, not just a leading brace. A failed parse is
// not an error, the content simply falls through to later rules.
func isJSON(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return json.Valid([]byte(t))
}

var (
	blockMathRe  = regexp.MustCompile(`(?s)\$\$.+?\$\$`)
	inlineMathRe = regexp.MustCompile(`\$[^$\n]+\$`)
)

func isLaTeX(s string) bool {
	return blockMathRe.MatchString(s) || inlineMathRe.MatchString(s)
}

func isEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// phoneRe is deliberately permissive: optional +, optional parenthesized
// prefix, at least 7 digits with common separators. It is anchored to the
// whole content so phone-looking fragments inside prose do not match.
var phoneRe = regexp.MustCompile(`^\+?(\(\d{1,4}\))?[\d().-]{7,}$`)

func isPhone(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	compact := strings.Join(strings.Fields(t), "")
	digits := 0
	for _, r := range compact {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && phoneRe.MatchString(compact)
}
