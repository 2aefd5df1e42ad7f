package classify

import "regexp"

// Markdown detection is two-tier. A single strong signal (heading, fence,
// rule, table row) classifies alone. Weak signals are common enough in plain
// prose that one alone means nothing; two distinct categories are required.
// The quorum counts categories, not occurrences, so a dozen asterisks still
// count as one signal.

var strongMarkdownRes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6}\s+.+$`),        // ATX heading
	regexp.MustCompile("(?s)```.*```"),             // fenced code block
	regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`),       // horizontal rule
	regexp.MustCompile(`(?m)^\|.+\|.+\|\s*$`),      // pipe table row
}

var weakMarkdownRes = []*regexp.Regexp{
	regexp.MustCompile(`\*\*[^*\n]+\*\*`),                  // bold
	regexp.MustCompile(`(^|[^*])\*[^*\n]+\*($|[^*])`),      // italic, not doubled
	regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`),               // unordered list item
	regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`),               // ordered list item
	regexp.MustCompile(`(?m)^\s*>\s?\S`),                   // blockquote
	regexp.MustCompile("`[^`\n]+`"),                        // inline code span
	regexp.MustCompile(`[^!]\[[^\]\n]+\]\([^)\n]+\)`),      // link
	regexp.MustCompile(`!\[[^\]\n]*\]\([^)\n]+\)`),         // image
	regexp.MustCompile(`\[[ xX]\]`),                        // checkbox
}

func isMarkdown(s string) bool {
	for _, re := range strongMarkdownRes {
		if re.MatchString(s) {
			return true
		}
	}
	distinct := 0
	for _, re := range weakMarkdownRes {
		if re.MatchString(s) {
			distinct++
			if distinct >= 2 {
				return true
			}
		}
	}
	return false
}
