package validator

import (
	"net"
	"net/mail"
	"net/url"
	"strings"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

// Email checks that value is a well-formed e-mail address. On success the
// normalized form is the trimmed, lowercased address and the domain is
// exposed as an attribute.
func Email(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" || !patterns.Email.MatchString(value) {
		return Result{}
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return Result{}
	}

	normalized := strings.ToLower(value)
	domain := normalized[strings.LastIndex(normalized, "@")+1:]

	return Result{
		Valid:      true,
		Normalized: normalized,
		Attributes: map[string]string{"domain": domain},
	}
}

// URL checks that value is a scheme-qualified URL with a host. Scheme, host,
// path and query are decomposed into attributes on success.
func URL(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" || !patterns.URL.MatchString(value) {
		return Result{}
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Result{}
	}

	attrs := map[string]string{
		"scheme": u.Scheme,
		"host":   u.Host,
	}
	if u.Path != "" {
		attrs["path"] = u.Path
	}
	if u.RawQuery != "" {
		attrs["query"] = u.RawQuery
	}

	return Result{Valid: true, Attributes: attrs}
}

// Phone checks that value looks like a phone number: loose international
// shape with 7 to 15 actual digits. The normalized form keeps only digits
// and a leading plus.
func Phone(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" || !patterns.Phone.MatchString(value) {
		return Result{}
	}

	digits := patterns.NonDigit.ReplaceAllString(value, "")
	if len(digits) < 7 || len(digits) > 15 {
		return Result{}
	}

	normalized := digits
	if strings.HasPrefix(value, "+") {
		normalized = "+" + digits
	}

	return Result{Valid: true, Normalized: normalized}
}

// IP checks that value is a valid IPv4 address. The dotted-quad pattern
// guards the shape; net.ParseIP verifies octet ranges.
func IP(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" || !patterns.IPv4.MatchString(value) {
		return Result{}
	}

	ip := net.ParseIP(value)
	if ip == nil || ip.To4() == nil {
		return Result{}
	}

	return Result{Valid: true, Normalized: ip.String()}
}

// Domain checks that value is a well-formed domain name. The top-level
// domain is exposed as an attribute on success.
func Domain(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 253 || !patterns.Domain.MatchString(value) {
		return Result{}
	}

	normalized := strings.ToLower(value)
	tld := normalized[strings.LastIndex(normalized, ".")+1:]

	return Result{
		Valid:      true,
		Normalized: normalized,
		Attributes: map[string]string{"tld": tld},
	}
}
