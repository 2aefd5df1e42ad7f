// Package budget provides the bounded-output helpers every extractor uses:
// rune-safe character truncation and line clipping with remainder counts.
// Keeping them in one place keeps the per-kind budgets consistent and
// testable together.
package budget

import "strings"

// TruncateChars returns at most max runes of s and reports whether anything
// was cut. max <= 0 returns s unchanged.
func TruncateChars(s string, max int) (string, bool) {
	if max <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]), true
}

// ClipLines splits s on newlines and returns at most max lines plus the
// count of lines dropped. max <= 0 returns all lines.
func ClipLines(s string, max int) ([]string, int) {
	lines := strings.Split(s, "\n")
	if max <= 0 || len(lines) <= max {
		return lines, 0
	}
	return lines[:max], len(lines) - max
}

// Lines selects the per-mode line budget.
func Lines(compact bool, compactMax, fullMax int) int {
	if compact {
		return compactMax
	}
	return fullMax
}

// Chars selects the per-mode character budget.
func Chars(compact bool, compactMax, fullMax int) int {
	if compact {
		return compactMax
	}
	return fullMax
}
