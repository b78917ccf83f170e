// Package parser — token stream vocabulary.

package parser

// tokenKind enumerates the token types emitted by the lexer.
type tokenKind uint8

const (
	tokenEOF         tokenKind = iota
	tokenNonTerminal           // <name>
	tokenTerminal              // bare or quoted literal
	tokenRuleSep               // ::=
	tokenListStart             // [
	tokenListEnd               // ]
	tokenComma                 // ,
)

// String names the kind for diagnostics.
func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenNonTerminal:
		return "non-terminal"
	case tokenTerminal:
		return "terminal"
	case tokenRuleSep:
		return "'::='"
	case tokenListStart:
		return "'['"
	case tokenListEnd:
		return "']'"
	case tokenComma:
		return "','"
	default:
		return "unknown token"
	}
}

// token is one lexical unit with its source line for error reporting.
type token struct {
	kind tokenKind
	text string // symbol name or terminal text; empty for punctuation
	line int    // 1-based line of the token's first character
}

// String renders the token for diagnostics: punctuation by kind, named
// tokens with their text.
func (t token) String() string {
	switch t.kind {
	case tokenNonTerminal:
		return "<" + t.text + ">"
	case tokenTerminal:
		return "terminal " + quote(t.text)
	default:
		return t.kind.String()
	}
}

// quote wraps s in double quotes for messages without escaping; token text
// never spans lines, which keeps messages readable.
func quote(s string) string { return `"` + s + `"` }
