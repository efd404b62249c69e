package sanitizer

import (
	"html"
	"strings"
	"unicode"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// EscapeHTML escapes the five HTML-significant characters (& < > " ').
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML reverses EscapeHTML.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripHTML removes every <...> tag and keeps the text content. Entities
// are left encoded: decoding them could resurface markup and would break
// the guarantee that a second pass changes nothing.
func StripHTML(s string) string {
	return patterns.HTMLTag.ReplaceAllString(s, "")
}

// SanitizeHTML removes script blocks with their content, event-handler
// attributes and javascript: schemes, in that order, then filters the
// remaining tags against allowedTags (case-insensitive), replacing
// disallowed tags with nothing while keeping their inner text. An empty
// allow-list skips the filtering step.
func SanitizeHTML(s string, allowedTags []string) string {
	result := patterns.ScriptBlock.ReplaceAllString(s, "")
	result = patterns.ScriptTag.ReplaceAllString(result, "")
	result = patterns.EventHandlerAttr.ReplaceAllString(result, "")
	result = patterns.JavaScriptScheme.ReplaceAllString(result, "")

	if len(allowedTags) == 0 {
		return result
	}

	allowed := make(map[string]struct{}, len(allowedTags))
	for _, tag := range allowedTags {
		allowed[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	return patterns.HTMLTag.ReplaceAllStringFunc(result, func(tag string) string {
		if _, ok := allowed[tagName(tag)]; ok {
			return tag
		}
		return ""
	})
}

// tagName extracts the lowercased element name from a raw <...> match.
func tagName(tag string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")
	inner = strings.TrimSpace(strings.TrimPrefix(inner, "/"))
	for i, r := range inner {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return strings.ToLower(inner[:i])
		}
	}
	return strings.ToLower(inner)
}

// SanitizeXML removes CDATA sections, processing instructions and comments.
// Element content is untouched.
func SanitizeXML(s string) string {
	result := patterns.CDATA.ReplaceAllString(s, "")
	result = patterns.ProcessingInstruction.ReplaceAllString(result, "")
	return patterns.HTMLComment.ReplaceAllString(result, "")
}

// RemoveMetadata strips HTML/XML comments, where editors and generators
// commonly leave author, tool and timestamp traces.
func RemoveMetadata(s string) string {
	return patterns.HTMLComment.ReplaceAllString(s, "")
}
