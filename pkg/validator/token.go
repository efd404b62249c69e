package validator

import "crypto/subtle"

// MinTokenLength is the shortest CSRF token the comparison accepts. Shorter
// tokens fail validation outright.
const MinTokenLength = 16

// CSRFToken compares a submitted token against the expected value in
// constant time. Equality of well-formed tokens is the only success path;
// length mismatches and short tokens fail without revealing which.
func CSRFToken(token, expected string) Result {
	if len(token) < MinTokenLength || len(expected) < MinTokenLength {
		return Result{}
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return Result{}
	}
	return Result{Valid: true}
}
