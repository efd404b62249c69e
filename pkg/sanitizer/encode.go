package sanitizer

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// URLEncode escapes s for safe inclusion in a query component.
func URLEncode(s string) string {
	return url.QueryEscape(s)
}

// URLDecode reverses URLEncode. Undecodable input comes back unchanged, so
// callers detect failure by comparing output to input, the same contract as
// Base64Decode.
func URLDecode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Base64Encode encodes s with standard base64.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard base64. Malformed input comes back
// unchanged; callers detect failure by comparing output to input.
func Base64Decode(s string) string {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}

// NormalizeUnicode applies the named Unicode normalization form to s.
// Recognized forms are NFC, NFD, NFKC and NFKD, case-insensitive; an empty
// form means NFC.
func NormalizeUnicode(s, form string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(form)) {
	case "", "NFC":
		return norm.NFC.String(s), nil
	case "NFD":
		return norm.NFD.String(s), nil
	case "NFKC":
		return norm.NFKC.String(s), nil
	case "NFKD":
		return norm.NFKD.String(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
}
