// Package parser — lexical analysis of grammar source.
//
// The lexer is driven lazily by the parser: next returns one token at a
// time, skipping whitespace, blank lines, and '#' comments before every
// token and tracking the current line for diagnostics.

package parser

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for malformed grammar source.
var (
	// ErrUnclosedNonTerminal indicates a '<' with no matching '>' before
	// end of input.
	ErrUnclosedNonTerminal = errors.New("parser: unclosed non-terminal")

	// ErrUnclosedQuote indicates a quoted terminal whose closing quote is
	// missing.
	ErrUnclosedQuote = errors.New("parser: unclosed quotes")

	// ErrBadSeparator indicates a sequence starting with ':' that is not
	// exactly "::=".
	ErrBadSeparator = errors.New("parser: invalid rule separator")

	// ErrUnexpectedToken indicates a structurally invalid rule.
	ErrUnexpectedToken = errors.New("parser: unexpected token")
)

// lexer converts grammar source into a token stream.
type lexer struct {
	src  []rune
	pos  int
	line int // 1-based, line of src[pos]
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src), line: 1}
}

// peek returns the current rune without consuming it; ok is false at EOF.
func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}

	return l.src[l.pos], true
}

// advance consumes one rune, keeping the line counter in step.
func (l *lexer) advance() {
	if l.pos < len(l.src) {
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

// next returns the next token, skipping whitespace and comments first.
func (l *lexer) next() (token, error) {
	l.skipBlank()

	c, ok := l.peek()
	if !ok {
		return token{kind: tokenEOF, line: l.line}, nil
	}

	switch c {
	case '<':
		return l.lexNonTerminal()
	case '[':
		l.advance()

		return token{kind: tokenListStart, line: l.line}, nil
	case ']':
		l.advance()

		return token{kind: tokenListEnd, line: l.line}, nil
	case ',':
		l.advance()

		return token{kind: tokenComma, line: l.line}, nil
	case ':':
		return l.lexRuleSep()
	case '>':
		// A '>' outside lexNonTerminal has no opening '<'.
		return token{}, fmt.Errorf("%w at line %d: stray '>'", ErrUnexpectedToken, l.line)
	default:
		return l.lexTerminal()
	}
}

// skipBlank consumes whitespace (including blank lines) and '#' comments
// until the next significant rune.
func (l *lexer) skipBlank() {
	for {
		c, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case unicode.IsSpace(c):
			l.advance()
		case c == '#':
			// Comment runs to end of line.
			for {
				c, ok = l.peek()
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

// lexNonTerminal consumes "<name>"; the name is every rune up to '>'.
func (l *lexer) lexNonTerminal() (token, error) {
	start := l.line
	l.advance() // consume '<'

	var name []rune
	for {
		c, ok := l.peek()
		if !ok {
			return token{}, fmt.Errorf("%w at line %d: <%s", ErrUnclosedNonTerminal, start, string(name))
		}
		if c == '>' {
			l.advance()

			return token{kind: tokenNonTerminal, text: string(name), line: start}, nil
		}
		name = append(name, c)
		l.advance()
	}
}

// lexRuleSep consumes exactly "::="; any other 3-rune sequence starting at
// ':' is an error.
func (l *lexer) lexRuleSep() (token, error) {
	start := l.line

	var seen []rune
	for i := 0; i < 3; i++ {
		c, ok := l.peek()
		if !ok {
			break
		}
		seen = append(seen, c)
		l.advance()
	}
	if string(seen) != "::=" {
		return token{}, fmt.Errorf("%w at line %d: %q", ErrBadSeparator, start, string(seen))
	}

	return token{kind: tokenRuleSep, line: start}, nil
}

// lexTerminal consumes one terminal. A leading double or single quote opens a quoted
// terminal whose text runs to the matching quote; otherwise the terminal is
// the maximal run of runes that are not whitespace, ',', ']', or '>'.
// A backslash escapes the following rune in either form.
func (l *lexer) lexTerminal() (token, error) {
	start := l.line

	var (
		value     []rune
		quoteChar rune
		inQuotes  bool
		escaped   bool
	)

	if c, ok := l.peek(); ok && (c == '"' || c == '\'') {
		inQuotes = true
		quoteChar = c
		l.advance()
	}

	for {
		c, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case escaped:
			value = append(value, c)
			escaped = false
			l.advance()
		case c == '\\':
			escaped = true
			l.advance()
		case inQuotes && c == quoteChar:
			l.advance()

			return token{kind: tokenTerminal, text: string(value), line: start}, nil
		case inQuotes:
			value = append(value, c)
			l.advance()
		case !unicode.IsSpace(c) && c != ',' && c != ']' && c != '>':
			value = append(value, c)
			l.advance()
		default:
			return token{kind: tokenTerminal, text: string(value), line: start}, nil
		}
	}

	if inQuotes {
		return token{}, fmt.Errorf("%w at line %d: %s", ErrUnclosedQuote, start, string(quoteChar)+string(value))
	}

	return token{kind: tokenTerminal, text: string(value), line: start}, nil
}
