// Package scrub is a sanitization and validation engine for untrusted
// strings. It inspects, transforms, and judges content before it is
// rendered as HTML, used as a file path, stored, logged, or compared
// against policy.
//
// The engine is a flat operation registry over a stateless processor:
// every operation name maps to one pure function, and a thin dispatcher
// wraps each call in a uniform envelope with status, timing, and a unique
// id. All operations are synchronous, CPU-bound and lock-free; a single
// Engine serves unlimited concurrent callers.
//
// Basic Usage:
//
//	engine := scrub.New()
//
//	env := engine.Execute("validate_email", map[string]any{
//		"email": "john.doe@example.com",
//	})
//	if env.OK() {
//		result := env.Result.(validator.Result)
//		fmt.Println(result.Valid, result.Attributes["domain"])
//	}
//
// Transforming operations return a TransformResult with the rewritten
// content and rune lengths:
//
//	env = engine.Execute("prevent_xss", map[string]any{
//		"content": `<script>alert(1)</script>hello`,
//	})
//
// Configuration:
//
//	engine := scrub.New(
//		scrub.WithMaxContentLength(64<<10),
//		scrub.WithBatchWorkers(8),
//		scrub.WithProfanityWords("foo", "bar"),
//		scrub.WithLogger(log),
//	)
//
// Batch runs apply one operation to many items with per-item isolation;
// a failing item is recorded at its index and its siblings are untouched:
//
//	env = engine.Execute("batch_sanitize", map[string]any{
//		"items":     []string{" a ", " b "},
//		"operation": "clean_whitespace",
//	})
//
// Error handling: Execute never panics and never returns an error value.
// Request problems (unknown operation, missing parameters, oversize
// content) and handler failures both come back as envelopes with
// Status "error". Validators treat invalid input as a result, not an
// error: "not an email" yields {Valid: false} inside a success envelope.
//
// The HTML and XML operations are pattern-based and best-effort, not a
// conformant parser; callers with a strict security boundary must not
// treat them as the sole defense. Likewise prevent_sql_injection is
// defense-in-depth, never a substitute for parameterized queries.
package scrub
