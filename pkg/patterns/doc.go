// Package patterns holds the compiled regular expressions shared by the
// validator, sanitizer and policy packages.
//
// Every matcher is compiled once at package initialisation and is read-only
// afterwards, so the package is safe for unlimited concurrent readers and no
// caller ever pays a compilation cost per operation.
//
// The matchers fall into four groups:
//
//   - Format: anchored full-match patterns for e-mail addresses, URLs,
//     phone numbers, IPv4 addresses and domain names.
//
//   - Attack vectors: the XSS, SQLInjection and PathTraversal slices, each
//     an ordered list of patterns that the security transformers strip from
//     untrusted content.
//
//   - Sensitive data: unanchored scanners for social security numbers,
//     credit-card numbers and North American phone numbers, used by the
//     redaction filters.
//
//   - Structural: HTML tags, comments, CDATA sections, processing
//     instructions, whitespace runs and the character classes used by the
//     filename and text sanitizers.
//
// The patterns are strict where they guard a validator (full anchoring,
// length bounds) and loose where they guard a filter: a filter that
// overmatches hostile input is safer than one that misses it.
package patterns
