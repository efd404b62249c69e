package patterns

import (
	"regexp"
	"strings"
)

// Format patterns are anchored: validators require the whole input to match,
// not a substring of it.
var (
	// Email accepts the practical subset of RFC 5322 addresses: dot-atom
	// local part, dotted domain, alphabetic TLD of two or more characters.
	Email = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// URL requires an explicit scheme and at least one character after the
	// authority separator. Host presence is checked separately via net/url.
	URL = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://[^\s]+$`)

	// Phone is a loose international form: optional leading plus, then 8-20
	// characters of digits and common separators. The validator additionally
	// counts digits, so separator-only input does not pass.
	Phone = regexp.MustCompile(`^\+?[0-9(][0-9\s().\-]{7,19}$`)

	// IPv4 matches dotted-quad shape only; octet ranges are verified with
	// net.ParseIP by the validator.
	IPv4 = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}$`)

	// Domain matches dotted labels of up to 63 characters with an
	// alphabetic TLD.
	Domain = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
)

// XSS vectors, ordered so that script blocks are consumed before stray
// script tags.
var (
	ScriptBlock      = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	ScriptTag        = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
	JavaScriptScheme = regexp.MustCompile(`(?i)javascript\s*:`)
	EventHandlerAttr = regexp.MustCompile(`(?i)\son\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)
	DangerousTag     = regexp.MustCompile(`(?i)</?(?:iframe|object|embed)\b[^>]*>`)
	MetaTag          = regexp.MustCompile(`(?i)</?(?:link|meta)\b[^>]*>`)
)

// XSS is the removal order used by the sanitizer.
var XSS = []*regexp.Regexp{
	ScriptBlock,
	ScriptTag,
	JavaScriptScheme,
	EventHandlerAttr,
	DangerousTag,
	MetaTag,
}

// SQL-injection vectors. Tautologies are listed before bare keywords so a
// condition like "OR 1=1" disappears as a unit instead of leaving operands
// behind.
var (
	SQLTautology = regexp.MustCompile(`(?i)\b(?:or|and)\s+['"]?\w+['"]?\s*=\s*['"]?\w+['"]?`)
	SQLKeyword   = regexp.MustCompile(`(?i)\b(?:select|insert|update|delete|drop|union|exec|execute|create|alter|truncate|declare|grant|revoke)\b`)
	SQLComment   = regexp.MustCompile(`(?s)(?:/\*.*?\*/|--|#)`)
	SQLSeparator = regexp.MustCompile(`;`)
	SQLProcedure = regexp.MustCompile(`(?i)\b(?:xp|sp)_\w+`)
)

// SQLInjection is the removal order used by the sanitizer.
var SQLInjection = []*regexp.Regexp{
	SQLTautology,
	SQLKeyword,
	SQLComment,
	SQLSeparator,
	SQLProcedure,
}

// PathTraversal lists traversal sequences from most to least encoded so a
// double-encoded form is never half-consumed by a simpler pattern. The
// sanitizer applies the whole list repeatedly until a fixpoint is reached.
var PathTraversal = []*regexp.Regexp{
	regexp.MustCompile(`(?i)%252e%252e%252f`),
	regexp.MustCompile(`(?i)%252e%252e%255c`),
	regexp.MustCompile(`(?i)\.\.%25(?:2f|5c)`),
	regexp.MustCompile(`(?i)%2e%2e%2f`),
	regexp.MustCompile(`(?i)%2e%2e%5c`),
	regexp.MustCompile(`(?i)%2e%2e[\\/]`),
	regexp.MustCompile(`(?i)\.\.%2f`),
	regexp.MustCompile(`(?i)\.\.%5c`),
	regexp.MustCompile(`\.\./`),
	regexp.MustCompile(`\.\.\\`),
}

// Sensitive-data scanners are unanchored: they locate occurrences inside
// larger text.
var (
	// SSN matches the 3-2-4 dashed social security shape.
	SSN = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)

	// CreditCard matches 13-19 digit runs with optional single space or
	// dash separators between digits. Word boundaries keep it from firing
	// inside longer digit runs.
	CreditCard = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)

	// SensitivePhone matches 10-digit North American numbers with common
	// grouping, including an optional leading parenthesis.
	SensitivePhone = regexp.MustCompile(`\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// Structural helpers.
var (
	HTMLTag               = regexp.MustCompile(`<[^>]*>`)
	HTMLComment           = regexp.MustCompile(`(?s)<!--.*?-->`)
	CDATA                 = regexp.MustCompile(`(?s)<!\[CDATA\[.*?\]\]>`)
	ProcessingInstruction = regexp.MustCompile(`(?s)<\?.*?\?>`)
	Whitespace            = regexp.MustCompile(`\s+`)
	NonDigit              = regexp.MustCompile(`\D`)

	// UnsafeFilename covers path separators and the characters that are
	// reserved on at least one mainstream filesystem.
	UnsafeFilename = regexp.MustCompile(`[<>:"/\\|?*]`)

	// ControlChars covers C0, DEL and C1 control characters.
	ControlChars = regexp.MustCompile(`[\x00-\x1f\x7f\x{0080}-\x{009f}]`)

	// UnsafeText matches everything outside letters and digits in any
	// script, underscore, whitespace and the small punctuation set kept
	// by ExtractSafeText.
	UnsafeText = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?\-]`)
)

// WordList compiles a case-insensitive whole-word matcher for the given
// words. Words are quoted, so regex metacharacters in them are literal.
// Returns an error when the list is empty or contains only blank entries.
func WordList(words []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return nil, ErrEmptyWordList
	}
	return regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
