package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// CleanWhitespace collapses every whitespace run, including newlines and
// tabs, to a single space and trims the ends. Idempotent.
func CleanWhitespace(s string) string {
	return strings.TrimSpace(patterns.Whitespace.ReplaceAllString(s, " "))
}

// ExtractSafeText keeps letters and digits in any script, underscores,
// whitespace and the punctuation set . , ! ? - and drops everything else.
func ExtractSafeText(s string) string {
	return patterns.UnsafeText.ReplaceAllString(s, "")
}

// Truncate cuts s to at most limit runes. Non-positive limits yield the
// empty string.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
