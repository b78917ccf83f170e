// Package builder provides a fluent, error-deferred API for constructing
// grammars programmatically:
//
//	g, err := builder.New().
//		Rule("greeting", "Hello", "<subject>").
//		Rule("subject", "world").
//		Rule("subject", "Go", "programmers").
//		Start("greeting").
//		Validator(validate.Noop{}).
//		Build()
//
// Every rule-adding operation returns the builder, so chains read like a
// grammar listing; the first error is recorded and reported by Build instead
// of aborting the caller's process. After the first error, further calls are
// no-ops.
package builder
