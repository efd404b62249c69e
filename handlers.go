package scrub

import (
	"unicode/utf8"

	"github.com/dmitrymomot/scrub/pkg/policy"
	"github.com/dmitrymomot/scrub/pkg/sanitizer"
	"github.com/dmitrymomot/scrub/pkg/validator"
)

const defaultProfanityReplacement = "***"

func newTransformResult(original, output string) TransformResult {
	return TransformResult{
		Output:         output,
		OriginalLength: utf8.RuneCountInString(original),
		FinalLength:    utf8.RuneCountInString(output),
	}
}

// transformHandler adapts a pure string transform into a registry handler.
func transformHandler(fn func(string) string) handlerFunc {
	return func(_ *Engine, content string, _ map[string]any) (any, error) {
		return newTransformResult(content, fn(content)), nil
	}
}

func handleValidateEmail(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.Email(content), nil
}

func handleValidateURL(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.URL(content), nil
}

func handleValidatePhone(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.Phone(content), nil
}

func handleValidateIP(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.IP(content), nil
}

func handleValidateDomain(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.Domain(content), nil
}

func handleValidateFileType(_ *Engine, content string, params map[string]any) (any, error) {
	allowed, err := stringSliceParam(params, "allowed_types")
	if err != nil {
		return nil, err
	}
	return validator.FileType(content, allowed), nil
}

func handleValidateJSON(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.JSON(content), nil
}

func handleValidateXML(_ *Engine, content string, _ map[string]any) (any, error) {
	return validator.XML(content), nil
}

func handleValidateCSRFToken(_ *Engine, content string, params map[string]any) (any, error) {
	expected, err := stringParam(params, "expected")
	if err != nil {
		return nil, err
	}
	return validator.CSRFToken(content, expected), nil
}

func handleSanitizeHTML(_ *Engine, content string, params map[string]any) (any, error) {
	tags, err := optionalStringSliceParam(params, "allowed_tags")
	if err != nil {
		return nil, err
	}
	return newTransformResult(content, sanitizer.SanitizeHTML(content, tags)), nil
}

func handlePreventPathTraversal(_ *Engine, content string, _ map[string]any) (any, error) {
	res := newTransformResult(content, sanitizer.PreventPathTraversal(content))
	res.Metadata = map[string]any{
		"traversal_detected": sanitizer.ContainsTraversal(content),
	}
	return res, nil
}

func handleFilterProfanity(e *Engine, content string, params map[string]any) (any, error) {
	replacement, err := optionalStringParam(params, "replacement", defaultProfanityReplacement)
	if err != nil {
		return nil, err
	}
	words, err := optionalStringSliceParam(params, "words")
	if err != nil {
		return nil, err
	}

	var out string
	switch {
	case len(words) > 0:
		out = sanitizer.FilterProfanity(content, words, replacement)
	case e.profanity != nil:
		out = e.profanity.ReplaceAllString(content, replacement)
	default:
		out = content
	}
	return newTransformResult(content, out), nil
}

func handleWhitelistChars(_ *Engine, content string, params map[string]any) (any, error) {
	chars, err := stringParam(params, "chars")
	if err != nil {
		return nil, err
	}
	return newTransformResult(content, sanitizer.WhitelistChars(content, chars)), nil
}

func handleBlacklistChars(_ *Engine, content string, params map[string]any) (any, error) {
	chars, err := stringParam(params, "chars")
	if err != nil {
		return nil, err
	}
	return newTransformResult(content, sanitizer.BlacklistChars(content, chars)), nil
}

func handleMaskCustom(_ *Engine, content string, params map[string]any) (any, error) {
	pattern, err := stringParam(params, "pattern")
	if err != nil {
		return nil, err
	}
	replacement, err := stringParam(params, "replacement")
	if err != nil {
		return nil, err
	}

	out, err := sanitizer.MaskPattern(content, pattern, replacement)
	if err != nil {
		return nil, err
	}
	return newTransformResult(content, out), nil
}

func handleNormalizeUnicode(_ *Engine, content string, params map[string]any) (any, error) {
	form, err := optionalStringParam(params, "form", "NFC")
	if err != nil {
		return nil, err
	}

	out, err := sanitizer.NormalizeUnicode(content, form)
	if err != nil {
		return nil, err
	}
	return newTransformResult(content, out), nil
}

func handlePolicyEnforce(_ *Engine, content string, params map[string]any) (any, error) {
	raw, err := mapParam(params, "policy")
	if err != nil {
		return nil, err
	}

	pol, err := policy.FromMap(raw)
	if err != nil {
		return nil, err
	}
	compiled, err := pol.Compile()
	if err != nil {
		return nil, err
	}
	return compiled.Enforce(content), nil
}
