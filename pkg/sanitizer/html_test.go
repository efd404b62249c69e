package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/pkg/sanitizer"
)

func TestEscapeHTMLRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "hello world"},
		{"all special chars", `<a href="x">it's & more</a>`},
		{"unicode", "héllo wörld ✓"},
		{"already escaped", "&lt;b&gt;"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			escaped := sanitizer.EscapeHTML(tt.input)
			assert.Equal(t, tt.input, sanitizer.UnescapeHTML(escaped))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", sanitizer.EscapeHTML("<b>bold</b>"))
	assert.NotContains(t, sanitizer.EscapeHTML(`<img src=x onerror=alert(1)>`), "<")
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple tags", "<b>bold</b> text", "bold text"},
		{"nested tags", "<div><p>para</p></div>", "para"},
		{"attributes", `<a href="https://example.com">link</a>`, "link"},
		{"no tags", "plain text", "plain text"},
		{"entities preserved", "&lt;b&gt; stays encoded", "&lt;b&gt; stays encoded"},
		{"unclosed bracket", "a < b and c > d", "a  d"},
		{"empty tag", "a<>b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestStripHTMLIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<b>bold</b> text",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"a < b > c < d",
		"<div><p>nested</p></div>",
	}

	for _, input := range inputs {
		once := sanitizer.StripHTML(input)
		assert.Equal(t, once, sanitizer.StripHTML(once), "second pass must change nothing for %q", input)
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		allowed  []string
		expected string
	}{
		{
			name:     "script block removed with content",
			input:    "before<script>evil()</script>after",
			allowed:  nil,
			expected: "beforeafter",
		},
		{
			name:     "event handler stripped",
			input:    `<p onclick="alert(1)">Hi</p>`,
			allowed:  nil,
			expected: "<p>Hi</p>",
		},
		{
			name:     "javascript scheme removed",
			input:    `<a href="javascript:alert(1)">x</a>`,
			allowed:  nil,
			expected: `<a href="alert(1)">x</a>`,
		},
		{
			name:     "allow-list keeps listed tags only",
			input:    "<p>Hi</p><b>bold</b><i>it</i>",
			allowed:  []string{"p", "b"},
			expected: "<p>Hi</p><b>bold</b>it",
		},
		{
			name:     "allow-list is case-insensitive",
			input:    "<P>Hi</P><em>x</em>",
			allowed:  []string{"p"},
			expected: "<P>Hi</P>x",
		},
		{
			name:     "scripts removed even when allow-listed",
			input:    "<script>x</script><b>ok</b>",
			allowed:  []string{"script", "b"},
			expected: "<b>ok</b>",
		},
		{
			name:     "empty allow-list keeps remaining tags",
			input:    "<em>kept</em>",
			allowed:  nil,
			expected: "<em>kept</em>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeHTML(tt.input, tt.allowed))
		})
	}
}

func TestSanitizeXML(t *testing.T) {
	t.Parallel()

	input := `<?xml version="1.0"?><root><!-- secret --><![CDATA[<raw>]]><a>text</a></root>`
	assert.Equal(t, "<root><a>text</a></root>", sanitizer.SanitizeXML(input))
}

func TestRemoveMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single comment", "a<!-- generator: tool v1 -->b", "ab"},
		{"multiline comment", "a<!-- line1\nline2 -->b", "ab"},
		{"multiple comments", "<!--x-->a<!--y-->b", "ab"},
		{"no comments", "<p>clean</p>", "<p>clean</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.RemoveMetadata(tt.input))
		})
	}
}
