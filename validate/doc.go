// Package validate provides composable post-processing validators applied to
// generated text before it is returned to the caller.
//
// A Validator is a pure text→text transformation with a stable name and an
// applicability predicate. Validators compose into a Chain (applied
// left-to-right, each member gated by its own AppliesTo on the current
// intermediate text) and can be registered in a Registry under stable names
// for lookup from configuration files and the CLI.
//
// Built-ins:
//
//   - Noop        — identity transform.
//   - SQLNull     — rewrites comparisons against NULL into IS [NOT] NULL.
//   - SQLKeyword  — normalizes SQL keyword casing (upper, lower, capitalized).
//
// All built-in validators are stateless and safe for concurrent use.
package validate
