package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// FilterProfanity replaces whole-word, case-insensitive matches of the
// given words with replacement. An empty word list leaves the input
// untouched. The matcher is compiled per call; long-lived callers should
// compile their list once with patterns.WordList and reuse it.
func FilterProfanity(s string, words []string, replacement string) string {
	re, err := patterns.WordList(words)
	if err != nil {
		return s
	}
	return re.ReplaceAllString(s, replacement)
}

// WhitelistChars keeps only the runes present in allowed, preserving the
// order of survivors. An empty allow set removes everything.
func WhitelistChars(s, allowed string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(allowed, r) {
			return r
		}
		return -1
	}, s)
}

// BlacklistChars removes every rune present in forbidden.
func BlacklistChars(s, forbidden string) string {
	if forbidden == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return -1
		}
		return r
	}, s)
}
