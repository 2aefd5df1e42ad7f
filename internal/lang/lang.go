// Package lang guesses the programming language of a snippet from cheap
// structural signatures. It is shared by the classifier's final code rule
// and by the code extractor, so both always agree on the language tag.
package lang

import (
	"encoding/json"
	"regexp"
	"strings"
)

// signature is one ordered detection rule. First match wins.
type signature struct {
	lang  string
	match func(s string) bool
}

var (
	jsImportRe    = regexp.MustCompile(`(?m)^\s*(import\s+.+\s+from\s+['"]|import\s+['"]|export\s+(default\s+|const\s+|function\s+|class\s+)|const\s+\w+\s*=\s*require\()`)
	tsAnnotRe     = regexp.MustCompile(`(?m):\s*(string|number|boolean|any|void|unknown)\b|\binterface\s+\w+\s*\{`)
	pyDefRe       = regexp.MustCompile(`(?m)^\s*(def|class)\s+\w+.*:\s*$`)
	pyImportRe    = regexp.MustCompile(`(?m)^\s*(from\s+[\w.]+\s+import\s+|import\s+[\w.]+\s*$)`)
	sqlRe         = regexp.MustCompile(`(?i)^\s*(select\s+.+\s+from\s+|insert\s+into\s+|update\s+\w+\s+set\s+|delete\s+from\s+|create\s+(table|index|view|database)\s+|alter\s+table\s+|drop\s+table\s+)`)
	cssRe         = regexp.MustCompile(`(?m)^\s*[.#]?[\w-]+(\s*[,>]\s*[.#]?[\w-]+)*\s*\{[^}]*:[^}]*\}`)
	goFuncRe      = regexp.MustCompile(`(?m)^\s*(package\s+\w+\s*$|func\s+(\(\w+\s+\*?\w+\)\s+)?\w+\s*\()`)
	rustFnRe      = regexp.MustCompile(`(?m)\bfn\s+\w+\s*\(|\blet\s+mut\s+\w+`)
	htmlDocRe     = regexp.MustCompile(`(?i)^\s*<!doctype\s+html|^\s*<html\b`)
	rubyRe        = regexp.MustCompile(`(?m)^\s*(def\s+\w+|class\s+\w+\s*(<\s*\w+)?\s*$|require\s+['"]|puts\s+)`)
	javaRe        = regexp.MustCompile(`(?m)\b(public|private|protected)\s+(static\s+)?(final\s+)?(class|void|int|String)\b`)
)

// ordered from most to least specific; permissive rules go last so they
// cannot shadow stronger evidence.
var signatures = []signature{
	{"shell", func(s string) bool { return strings.HasPrefix(s, "#!") }},
	{"php", func(s string) bool { return strings.HasPrefix(strings.TrimSpace(s), "<?php") }},
	{"yaml", isYAMLFrontMatter},
	{"html", func(s string) bool { return htmlDocRe.MatchString(s) }},
	{"sql", func(s string) bool { return sqlRe.MatchString(s) }},
	{"typescript", func(s string) bool { return jsImportRe.MatchString(s) && tsAnnotRe.MatchString(s) }},
	{"javascript", func(s string) bool { return jsImportRe.MatchString(s) }},
	{"rust", func(s string) bool { return rustFnRe.MatchString(s) }},
	{"go", func(s string) bool { return goFuncRe.MatchString(s) && strings.Contains(s, "{") }},
	{"python", func(s string) bool {
		return (pyDefRe.MatchString(s) && !strings.Contains(s, "{")) || pyImportRe.MatchString(s)
	}},
	{"c", func(s string) bool {
		return strings.Contains(s, "#include") || strings.Contains(s, "int main(")
	}},
	{"cpp", func(s string) bool { return strings.Contains(s, "std::") }},
	{"java", func(s string) bool { return javaRe.MatchString(s) }},
	{"ruby", func(s string) bool { return rubyRe.MatchString(s) && !strings.Contains(s, "{") }},
	{"css", func(s string) bool { return cssRe.MatchString(s) }},
}

// Guess returns a language tag for code-looking content, or the empty string
// when nothing matches. It never fails and runs in time linear in len(code)
// times the number of signatures.
func Guess(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	for _, sig := range signatures {
		if sig.match(code) {
			return sig.lang
		}
	}
	// Last resort: content that parses as JSON is still code-shaped even if
	// the classifier's earlier JSON rule declined it (e.g. a bare literal).
	if looksLikeJSON(code) {
		return "json"
	}
	return ""
}

func isYAMLFrontMatter(s string) bool {
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return false
	}
	rest := s[strings.IndexByte(s, '\n')+1:]
	return strings.Contains(rest, "\n---") && strings.Contains(rest, ":")
}

func looksLikeJSON(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return json.Valid([]byte(t))
}
