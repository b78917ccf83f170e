// Package parser compiles textual grammar definitions into a grammar.Grammar.
//
// The source format is a flat list of rules, one alternative per rule:
//
//	# comment to end of line
//	<greeting> ::= ["Hello", <subject>]
//	<subject>  ::= ["world"]
//	<subject>  ::= ["Go", "programmers"]
//
// Elements are non-terminal references (<name>), quoted terminals ("text" or
// 'text', with backslash escapes), or bare terminals (any run of characters
// free of whitespace, ',', ']', and '>'). Repeated definitions of the same
// non-terminal accumulate as alternatives in declaration order.
//
// Parsing is fail-fast: any malformed input aborts the whole load with a
// line-tagged error and no partial grammar is returned. Errors wrap the
// package sentinels (ErrUnclosedNonTerminal, ErrUnclosedQuote,
// ErrBadSeparator, ErrUnexpectedToken) and grammar.ErrEmptyProduction, so
// callers branch with errors.Is.
package parser
