package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/scrub/pkg/sanitizer"
)

func TestPreventXSS(t *testing.T) {
	t.Parallel()

	t.Run("script block neutralized, text preserved", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.PreventXSS("<script>alert(1)</script>hello")
		assert.NotContains(t, result, "<script")
		assert.Contains(t, result, "hello")
	})

	tests := []struct {
		name    string
		input   string
		absent  []string
		present string
	}{
		{
			name:    "iframe removed",
			input:   `<iframe src="//evil.example"></iframe>content`,
			absent:  []string{"iframe"},
			present: "content",
		},
		{
			name:    "event handler removed",
			input:   `<img src=x onerror=alert(1)>safe`,
			absent:  []string{"onerror"},
			present: "safe",
		},
		{
			name:    "javascript scheme removed",
			input:   `<a href="javascript:steal()">click</a>`,
			absent:  []string{"javascript:"},
			present: "click",
		},
		{
			name:    "meta refresh removed",
			input:   `<meta http-equiv="refresh" content="0;url=//evil">text`,
			absent:  []string{"meta", "refresh"},
			present: "text",
		},
		{
			name:    "embed and object removed",
			input:   `<object data="x"><embed src="y">inner`,
			absent:  []string{"object", "embed"},
			present: "inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizer.PreventXSS(tt.input)
			for _, fragment := range tt.absent {
				assert.NotContains(t, strings.ToLower(result), fragment)
			}
			assert.Contains(t, result, tt.present)
		})
	}

	t.Run("remaining markup is escaped", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.PreventXSS("<em>hi</em>")
		assert.NotContains(t, result, "<")
		assert.Contains(t, result, "&lt;em&gt;")
	})
}

func TestPreventSQLInjection(t *testing.T) {
	t.Parallel()

	t.Run("tautology removed as a unit", func(t *testing.T) {
		t.Parallel()
		result := sanitizer.PreventSQLInjection("1 OR 1=1")
		assert.NotContains(t, result, "OR")
		assert.NotContains(t, result, "1=1")
	})

	tests := []struct {
		name   string
		input  string
		absent []string
	}{
		{"union select", "x UNION SELECT password FROM users", []string{"UNION", "SELECT"}},
		{"drop table", "1; DROP TABLE users", []string{";", "DROP"}},
		{"comment marker", "admin'--", []string{"--"}},
		{"block comment", "a /* hidden */ b", []string{"/*", "*/"}},
		{"quoted tautology", "name' OR '1'='1", []string{"OR"}},
		{"stored procedure", "exec xp_cmdshell 'dir'", []string{"exec", "xp_cmdshell"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizer.PreventSQLInjection(tt.input)
			for _, fragment := range tt.absent {
				assert.NotContains(t, strings.ToUpper(result), strings.ToUpper(fragment))
			}
		})
	}

	t.Run("single quotes doubled", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "it''s fine", sanitizer.PreventSQLInjection("it's fine"))
	})

	t.Run("benign text untouched apart from quotes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello world 42", sanitizer.PreventSQLInjection("hello world 42"))
	})
}

func TestPreventPathTraversal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain relative path", "uploads/avatar.png", "uploads/avatar.png"},
		{"simple traversal", "../../etc/passwd", "etc/passwd"},
		{"interleaved traversal", "....//etc/passwd", "etc/passwd"},
		{"encoded traversal", "%2e%2e%2f%2e%2e%2fetc", "etc"},
		{"mixed encoding", "..%2fsecrets.txt", "secrets.txt"},
		{"double encoded", "..%252f..%252fconfig", "config"},
		{"backslash traversal", `..\..\windows\system32`, "windows/system32"},
		{"bare dot-dot", "..", ""},
		{"sequences removed not resolved", "a/../../b", "a/b"},
		{"trailing dot-dot resolves away", "a/..", ""},
		{"dot-dot pair", "../..", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.PreventPathTraversal(tt.input))
		})
	}
}

func TestPreventPathTraversalFixpoint(t *testing.T) {
	t.Parallel()

	// Single-pass removal would leave a fresh "../" behind for these.
	for _, input := range []string{"....//x", "..././../x", "%2e%2e%2f../x"} {
		result := sanitizer.PreventPathTraversal(input)
		assert.False(t, sanitizer.ContainsTraversal(result), "traversal survived in %q -> %q", input, result)
	}
}

func TestContainsTraversal(t *testing.T) {
	t.Parallel()

	assert.True(t, sanitizer.ContainsTraversal("../x"))
	assert.True(t, sanitizer.ContainsTraversal("a/../b"))
	assert.True(t, sanitizer.ContainsTraversal("%2e%2e%2fx"))
	assert.True(t, sanitizer.ContainsTraversal(".."))
	assert.False(t, sanitizer.ContainsTraversal("a/b/c"))
	assert.False(t, sanitizer.ContainsTraversal("file..name"))
	assert.False(t, sanitizer.ContainsTraversal(""))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean name", "report.pdf", "report.pdf"},
		{"path separators", "a/b\\c.txt", "a_b_c.txt"},
		{"reserved characters", `a<b>c:d"e|f?g*h.txt`, "a_b_c_d_e_f_g_h.txt"},
		{"control characters stripped", "re\x00po\x1frt.pdf", "report.pdf"},
		{"surrounding dots and spaces", "  ..hidden.. ", "hidden"},
		{"empty becomes file", "", "file"},
		{"only junk becomes file", " .. ", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 300) + ".txt"
	result := sanitizer.SanitizeFilename(long)

	assert.Len(t, result, 255)
	assert.True(t, strings.HasSuffix(result, ".txt"), "extension must survive truncation")
}
