// Package validator provides format checks for untrusted strings: e-mail
// addresses, URLs, phone numbers, IPv4 addresses, domain names, file types,
// JSON and XML documents, and CSRF tokens.
//
// Every check returns a Result value. Malformed input is an expected outcome,
// not an error condition, so no check ever returns an error or panics:
//
//	res := validator.Email("john.doe@example.com")
//	// res.Valid      == true
//	// res.Normalized == "john.doe@example.com"
//	// res.Attributes == map[string]string{"domain": "example.com"}
//
// Successful results may carry a normalized form of the input (lowercased
// e-mail, digit-only phone) and descriptive attributes (URL components,
// detected content type, parsed JSON type). Failed results for the document
// checks carry the parser message under the "error" attribute so callers can
// surface diagnostics without treating them as failures of the engine itself.
//
// Checks match the whole input against the compiled patterns in the patterns
// package and then apply the cheap structural verifications the standard
// library offers (mail.ParseAddress, url.ParseRequestURI, net.ParseIP).
//
// The package is stateless and safe for concurrent use.
package validator
