package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/scrub/pkg/patterns"
)

const maskRune = '*'

// Fixed-width placeholders used by FilterSensitiveData.
const (
	ssnPlaceholder   = "XXX-XX-XXXX"
	cardPlaceholder  = "XXXX-XXXX-XXXX-XXXX"
	phonePlaceholder = "XXX-XXX-XXXX"
)

// MaskEmail hides the local part except its first character, keeping the
// domain and the local-part length intact. Values without an at sign or
// with a local part shorter than two characters come back unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	local := []rune(email[:at])
	if len(local) < 2 {
		return email
	}

	return string(local[0]) + strings.Repeat(string(maskRune), len(local)-1) + email[at:]
}

// MaskPhone masks every digit except the last four, leaving separators in
// place so the grouping stays recognizable. Values with fewer than seven
// digits come back unchanged.
func MaskPhone(phone string) string {
	if digitCount(phone) < 7 {
		return phone
	}
	return maskDigits(phone, 4)
}

// MaskCreditCard masks every digit except the last four. Values with fewer
// than twelve digits come back unchanged.
func MaskCreditCard(card string) string {
	if digitCount(card) < 12 {
		return card
	}
	return maskDigits(card, 4)
}

// MaskSSN masks every digit except the last four. Values with fewer than
// nine digits come back unchanged.
func MaskSSN(ssn string) string {
	if digitCount(ssn) < 9 {
		return ssn
	}
	return maskDigits(ssn, 4)
}

// MaskPattern replaces every match of the caller-supplied expression with
// replacement. The expression is compiled per call; a non-compiling one is
// reported so the caller can reject the request instead of shipping
// unmasked data.
func MaskPattern(s, pattern, replacement string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re.ReplaceAllString(s, replacement), nil
}

// FilterSensitiveData replaces social security numbers, credit-card numbers
// and 10-digit phone numbers found inside free text with fixed-width
// placeholders. Cards are scanned before phone numbers so a card's digit
// run is never half-claimed as a phone number.
func FilterSensitiveData(s string) string {
	result := patterns.SSN.ReplaceAllString(s, ssnPlaceholder)
	result = patterns.CreditCard.ReplaceAllString(result, cardPlaceholder)
	return patterns.SensitivePhone.ReplaceAllString(result, phonePlaceholder)
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// maskDigits replaces digits with the mask rune, keeping the trailing keep
// digits and every non-digit character as-is.
func maskDigits(s string, keep int) string {
	visibleFrom := digitCount(s) - keep
	seen := 0
	return strings.Map(func(r rune) rune {
		if !unicode.IsDigit(r) {
			return r
		}
		seen++
		if seen <= visibleFrom {
			return maskRune
		}
		return r
	}, s)
}
