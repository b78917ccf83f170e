// Package parser — recursive-descent rule parsing.
//
// The parser holds one token of lookahead and drives the lexer lazily.
// Grammar structure:
//
//	rule       = NonTerminal "::=" "[" production "]"
//	production = (Terminal | NonTerminal) { [","] (Terminal | NonTerminal) }

package parser

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gramgen/grammar"
)

// Parse compiles grammar source into a Grammar, applying opts (start symbol,
// config, validator) before rules are added. If a start symbol is designated
// and absent from the parsed rule table, the load fails with
// grammar.ErrUnknownSymbol; no partial grammar is ever returned.
func Parse(src string, opts ...grammar.Option) (*grammar.Grammar, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	g := grammar.New(opts...)
	for p.tok.kind != tokenEOF {
		name, prod, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		// Repeated definitions accumulate as alternatives.
		if err = g.AddProduction(name, prod); err != nil {
			return nil, err
		}
	}

	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseFile loads and compiles a grammar file. Unreadable files surface as
// wrapped I/O errors; malformed content aborts exactly as Parse does.
func ParseFile(path string, opts ...grammar.Option) (*grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: read grammar file: %w", err)
	}

	return Parse(string(data), opts...)
}

// ParseProduction compiles a single element list ("\"SELECT\", <column>")
// into a Production. An empty list is ErrEmptyProduction.
func ParseProduction(src string) (grammar.Production, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	return p.parseProduction()
}

// parser consumes the token stream with one token of lookahead.
type parser struct {
	lex *lexer
	tok token // current token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}

	return p, nil
}

// next replaces the current token with the following one.
func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

// expect consumes the current token iff it has the wanted kind.
func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return fmt.Errorf("%w at line %d: expected %s, found %s",
			ErrUnexpectedToken, p.tok.line, kind, p.tok)
	}

	return p.next()
}

// parseRule parses one full rule:
// NonTerminal, "::=", "[", production, "]".
func (p *parser) parseRule() (string, grammar.Production, error) {
	if p.tok.kind != tokenNonTerminal {
		return "", nil, fmt.Errorf("%w at line %d: expected %s, found %s",
			ErrUnexpectedToken, p.tok.line, tokenNonTerminal, p.tok)
	}
	name := p.tok.text
	if err := p.next(); err != nil {
		return "", nil, err
	}

	if err := p.expect(tokenRuleSep); err != nil {
		return "", nil, err
	}
	if err := p.expect(tokenListStart); err != nil {
		return "", nil, err
	}

	prod, err := p.parseProduction()
	if err != nil {
		return "", nil, err
	}

	if err = p.expect(tokenListEnd); err != nil {
		return "", nil, err
	}

	return name, prod, nil
}

// parseProduction accumulates terminal and non-terminal elements, silently
// skipping commas, until a token that cannot start an element ends the list.
func (p *parser) parseProduction() (grammar.Production, error) {
	line := p.tok.line

	var elems []grammar.Element
loop:
	for {
		switch p.tok.kind {
		case tokenNonTerminal:
			elems = append(elems, grammar.NonTerm(p.tok.text))
		case tokenTerminal:
			elems = append(elems, grammar.Term(p.tok.text))
		case tokenComma:
			// Separator only; never part of the output.
		default:
			break loop
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if len(elems) == 0 {
		return nil, fmt.Errorf("%w at line %d", grammar.ErrEmptyProduction, line)
	}

	return grammar.NewProduction(elems...)
}
