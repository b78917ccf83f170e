// Package grammar defines the central Grammar, Production, and Element types:
// the compiled rule table that maps non-terminal names to ordered lists of
// alternative productions, plus the generation configuration attached to it.
//
// A Grammar is built once — by parser.Parse/ParseFile, by builder.New, or
// directly via AddRule — and is thereafter treated as read-only by generation:
// expand never mutates the rule table, so independent expansion calls may run
// concurrently over a shared Grammar. Swapping the Config or the attached
// validator between calls requires external synchronization.
//
// Errors:
//
//	ErrEmptyProduction - a rule or production with zero elements.
//	ErrEmptySymbol     - a rule keyed by the empty non-terminal name.
//	ErrUnknownSymbol   - the designated start symbol has no rules (load-time).
package grammar
