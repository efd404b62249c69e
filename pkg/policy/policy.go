package policy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/scrub/pkg/sanitizer"
)

// Policy is a declarative rule set for one class of content. The zero value
// permits everything.
type Policy struct {
	MaxLength         int      `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	ForbiddenPatterns []string `json:"forbidden_patterns,omitempty" yaml:"forbidden_patterns,omitempty"`
	RequiredPatterns  []string `json:"required_patterns,omitempty" yaml:"required_patterns,omitempty"`
	AutoSanitize      bool     `json:"auto_sanitize,omitempty" yaml:"auto_sanitize,omitempty"`
}

// Result is the outcome of enforcing a policy on one piece of content.
// Compliant is true exactly when Violations is empty. Lengths are measured
// in runes.
type Result struct {
	SanitizedContent string   `json:"sanitized_content"`
	Violations       []string `json:"violations"`
	Compliant        bool     `json:"compliant"`
	OriginalLength   int      `json:"original_length"`
	FinalLength      int      `json:"final_length"`
}

// FromMap builds a Policy from loosely typed request parameters. Unknown
// fields and wrong value types are rejected so a typo in a policy never
// silently weakens it.
func FromMap(m map[string]any) (Policy, error) {
	var p Policy
	for key, value := range m {
		switch key {
		case "max_length":
			n, ok := toInt(value)
			if !ok || n < 0 {
				return Policy{}, fmt.Errorf("%w: max_length must be a non-negative integer", ErrInvalidPolicy)
			}
			p.MaxLength = n
		case "forbidden_patterns":
			list, ok := toStringSlice(value)
			if !ok {
				return Policy{}, fmt.Errorf("%w: forbidden_patterns must be a list of strings", ErrInvalidPolicy)
			}
			p.ForbiddenPatterns = list
		case "required_patterns":
			list, ok := toStringSlice(value)
			if !ok {
				return Policy{}, fmt.Errorf("%w: required_patterns must be a list of strings", ErrInvalidPolicy)
			}
			p.RequiredPatterns = list
		case "auto_sanitize":
			b, ok := value.(bool)
			if !ok {
				return Policy{}, fmt.Errorf("%w: auto_sanitize must be a boolean", ErrInvalidPolicy)
			}
			p.AutoSanitize = b
		default:
			return Policy{}, fmt.Errorf("%w: unknown field %q", ErrInvalidPolicy, key)
		}
	}
	return p, nil
}

// FromYAML parses a YAML policy document. Unknown fields are rejected.
func FromYAML(data []byte) (Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Policy{}, fmt.Errorf("%w: empty document", ErrInvalidPolicy)
		}
		return Policy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return p, nil
}

// Compiled is a policy with its patterns compiled, ready to enforce.
type Compiled struct {
	maxLength    int
	autoSanitize bool
	forbidden    []compiledPattern
	required     []compiledPattern
}

type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

// Compile validates the policy and compiles its patterns. Policies that
// fail here must be treated as caller errors; they never reach enforcement.
func (p Policy) Compile() (*Compiled, error) {
	if p.MaxLength < 0 {
		return nil, fmt.Errorf("%w: max_length must not be negative", ErrInvalidPolicy)
	}

	c := &Compiled{
		maxLength:    p.MaxLength,
		autoSanitize: p.AutoSanitize,
	}

	for _, src := range p.ForbiddenPatterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: forbidden pattern %q: %v", ErrInvalidPolicy, src, err)
		}
		c.forbidden = append(c.forbidden, compiledPattern{source: src, re: re})
	}
	for _, src := range p.RequiredPatterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: required pattern %q: %v", ErrInvalidPolicy, src, err)
		}
		c.required = append(c.required, compiledPattern{source: src, re: re})
	}

	return c, nil
}

// Enforce applies the policy to content. The fixed step order matters: the
// required-pattern check runs against content already truncated and purged
// of forbidden matches, so a required token chopped off by the length cap
// counts as missing.
func (c *Compiled) Enforce(content string) Result {
	original := content
	violations := []string{}

	if c.maxLength > 0 {
		if truncated := sanitizer.Truncate(content, c.maxLength); truncated != content {
			violations = append(violations, fmt.Sprintf("content exceeds maximum length of %d", c.maxLength))
			content = truncated
		}
	}

	for _, fp := range c.forbidden {
		if fp.re.MatchString(content) {
			violations = append(violations, fmt.Sprintf("forbidden pattern found: %s", fp.source))
			content = fp.re.ReplaceAllString(content, "")
		}
	}

	for _, rp := range c.required {
		if !rp.re.MatchString(content) {
			violations = append(violations, fmt.Sprintf("required pattern missing: %s", rp.source))
		}
	}

	if c.autoSanitize {
		content = sanitizer.Apply(content,
			sanitizer.PreventXSS,
			sanitizer.CleanWhitespace,
		)
	}

	return Result{
		SanitizedContent: content,
		Violations:       violations,
		Compliant:        len(violations) == 0,
		OriginalLength:   utf8.RuneCountInString(original),
		FinalLength:      utf8.RuneCountInString(content),
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func toStringSlice(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
