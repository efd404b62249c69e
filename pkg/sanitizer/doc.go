// Package sanitizer provides the transformations applied to untrusted
// strings before they are rendered, stored or passed to other systems.
//
// The functions are grouped conceptually into several areas:
//
//   - HTML & XML: escaping, tag stripping, allow-list filtering and
//     removal of comments, CDATA sections and processing instructions.
//
//   - Security: routines that strip XSS vectors, SQL-injection fragments
//     and path-traversal sequences, and that make filenames safe for any
//     mainstream filesystem.
//
//   - Masking & filtering: shape-preserving maskers for e-mail addresses,
//     phone numbers, card numbers and SSNs, fixed-width redaction of
//     sensitive data found inside free text, profanity filtering and
//     character allow/deny lists.
//
//   - Encoding: URL and base64 round-trips, Unicode normalization and
//     whitespace cleanup.
//
// Every transformer is a pure function: same input, same output, no state.
// All pattern matching uses the precompiled expressions from the patterns
// package, so no call compiles a regular expression except MaskPattern,
// which by contract receives its pattern from the caller.
//
// # Usage
//
//	safe := sanitizer.PreventXSS(userInput)
//
//	clean := sanitizer.Apply(raw,
//	    sanitizer.StripHTML,
//	    sanitizer.CleanWhitespace,
//	)
//
// # Error handling
//
// Transformers fall back to returning their input (the decoders) or a safe
// subset of it rather than failing. The two exceptions are MaskPattern and
// NormalizeUnicode, whose parameters can be genuinely unusable; both report
// that with an error instead of guessing.
//
// # Security notes
//
// The HTML handling is pattern-based, not a conformant parser. It is
// best-effort hardening for plain-text-ish content; content rendered into
// HTML documents still needs output encoding at the render site, and
// prevent_sql_injection style filtering never replaces parameterized
// queries.
package sanitizer
