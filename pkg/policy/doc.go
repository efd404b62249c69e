// Package policy implements declarative content policies: a maximum length,
// forbidden patterns, required patterns and an optional auto-sanitize step.
//
// A Policy arrives as data, from request parameters (FromMap) or from a
// YAML document (FromYAML), and is compiled before use:
//
//	p, err := policy.FromYAML(doc)
//	if err != nil { ... }        // malformed document
//	c, err := p.Compile()
//	if err != nil { ... }        // bad pattern, negative length
//	res := c.Enforce(content)    // never fails
//
// Compile is the only place a policy can be rejected. Enforce always
// succeeds and reports rule breaches as violations inside the Result;
// a compliant input is simply one with no violations. Enforcement order is
// fixed: truncation first, then forbidden-pattern removal, then the
// required-pattern check against the already-modified content, then
// auto-sanitization.
package policy
