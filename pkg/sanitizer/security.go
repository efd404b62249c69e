package sanitizer

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// removeAll applies every pattern once, in list order.
func removeAll(s string, res []*regexp.Regexp) string {
	for _, re := range res {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

// PreventXSS removes every known XSS vector and escapes what remains.
// Removal must come first: escaping first would freeze the vectors as
// inert text that a later unescape could revive.
func PreventXSS(s string) string {
	return EscapeHTML(removeAll(s, patterns.XSS))
}

// PreventSQLInjection removes tautology conditions, SQL keywords, comment
// markers, statement separators and stored-procedure prefixes, then doubles
// the remaining single quotes. Defense in depth for legacy sinks;
// parameterized queries remain the real fix.
func PreventSQLInjection(s string) string {
	return strings.ReplaceAll(removeAll(s, patterns.SQLInjection), "'", "''")
}

// Removal rounds are bounded so adversarial nesting cannot spin the loop.
const maxTraversalRounds = 10

// PreventPathTraversal strips traversal sequences, in all supported
// encodings, until a pass removes nothing, then normalizes the survivor to
// a clean slash-separated path. Normalization can itself resurface dot-dot
// elements from fragments, so they are dropped element-wise afterwards.
func PreventPathTraversal(p string) string {
	result := p
	for i := 0; i < maxTraversalRounds; i++ {
		next := removeAll(result, patterns.PathTraversal)
		if next == result {
			break
		}
		result = next
	}

	if result == "" {
		return ""
	}

	cleaned := path.Clean(strings.ReplaceAll(result, `\`, "/"))
	if cleaned == "." {
		return ""
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		parts := strings.Split(cleaned, "/")
		kept := parts[:0]
		for _, part := range parts {
			if part != ".." {
				kept = append(kept, part)
			}
		}
		cleaned = path.Clean(strings.Join(kept, "/"))
		if cleaned == "." {
			return ""
		}
	}

	return cleaned
}

// ContainsTraversal reports whether the path carries any traversal
// sequence, encoded or literal, including bare dot-dot elements.
func ContainsTraversal(p string) bool {
	for _, re := range patterns.PathTraversal {
		if re.MatchString(p) {
			return true
		}
	}
	for _, part := range strings.FieldsFunc(p, isPathSeparator) {
		if part == ".." {
			return true
		}
	}
	return false
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

const maxFilenameBytes = 255

// SanitizeFilename replaces path separators and the characters reserved on
// mainstream filesystems with underscores, strips control characters, trims
// surrounding spaces and dots, and truncates to 255 bytes keeping the
// extension. A name with nothing left becomes "file".
func SanitizeFilename(name string) string {
	result := patterns.UnsafeFilename.ReplaceAllString(name, "_")
	result = patterns.ControlChars.ReplaceAllString(result, "")
	result = strings.Trim(result, " .")
	result = truncateFilename(result, maxFilenameBytes)
	if result == "" {
		return "file"
	}
	return result
}

// truncateFilename cuts name to at most limit bytes, sacrificing the base
// name before the extension. Extensions that alone exceed the limit are cut
// like any other text.
func truncateFilename(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	ext := filepath.Ext(name)
	if len(ext) >= limit {
		return trimToRune(name, limit)
	}
	return trimToRune(name[:len(name)-len(ext)], limit-len(ext)) + ext
}

// trimToRune cuts s to at most limit bytes without splitting a rune.
func trimToRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
