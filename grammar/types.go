// Package grammar — element, production, and configuration types.
//
// This file declares Element, Production, Config, GrammarOption, and the
// sentinel errors shared by the parser and builder front-ends.

package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grammar construction.
var (
	// ErrEmptyProduction indicates a rule or production with zero elements.
	ErrEmptyProduction = errors.New("grammar: empty production")

	// ErrEmptySymbol indicates a rule keyed by the empty non-terminal name.
	ErrEmptySymbol = errors.New("grammar: empty non-terminal name")

	// ErrUnknownSymbol indicates that the designated start symbol has no
	// rules. It is raised at load time only; symbols referenced inside
	// productions are never checked (see expand).
	ErrUnknownSymbol = errors.New("grammar: unknown non-terminal")
)

// ElementKind discriminates the two Element variants.
type ElementKind uint8

const (
	// Terminal is literal text emitted as-is.
	Terminal ElementKind = iota
	// NonTerminal is a named placeholder that expands via its productions.
	NonTerminal
)

// Element is one item of a production: either literal text (Terminal) or a
// reference to another rule (NonTerminal). Elements are immutable values.
type Element struct {
	// Kind selects the variant.
	Kind ElementKind

	// Text is the literal text for a Terminal, or the symbol name for a
	// NonTerminal.
	Text string
}

// Term returns a Terminal element carrying text.
func Term(text string) Element {
	return Element{Kind: Terminal, Text: text}
}

// NonTerm returns a NonTerminal element referencing name.
func NonTerm(name string) Element {
	return Element{Kind: NonTerminal, Text: name}
}

// String renders the element in grammar-source notation:
// non-terminals as <name>, terminals as quoted text.
func (e Element) String() string {
	if e.Kind == NonTerminal {
		return "<" + e.Text + ">"
	}

	return fmt.Sprintf("%q", e.Text)
}

// Production is one concrete alternative for a non-terminal: an ordered,
// non-empty sequence of elements.
type Production []Element

// NewProduction builds a production from elems.
// Zero elements is a construction error (ErrEmptyProduction).
func NewProduction(elems ...Element) (Production, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyProduction
	}
	p := make(Production, len(elems))
	copy(p, elems)

	return p, nil
}

// String renders the production as a comma-separated element list.
func (p Production) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// DefaultMaxDepth bounds nested non-terminal expansion when no explicit
// limit is configured.
const DefaultMaxDepth = 100

// Config is the immutable generation configuration snapshot used by one
// expansion call. Replace it wholesale via SetConfig between calls.
type Config struct {
	// AutoSpacing inserts a single space between adjacent output tokens
	// unless one of them already touches whitespace at the boundary.
	AutoSpacing bool

	// TrimOutput strips leading/trailing whitespace from the final string.
	TrimOutput bool

	// MaxDepth bounds the number of nested non-terminal expansions along a
	// derivation path, guaranteeing termination for recursive grammars.
	MaxDepth int
}

// DefaultConfig returns the documented defaults: auto-spacing on, trimming
// on, depth bound DefaultMaxDepth.
func DefaultConfig() Config {
	return Config{
		AutoSpacing: true,
		TrimOutput:  true,
		MaxDepth:    DefaultMaxDepth,
	}
}

// Option configures a Grammar at construction.
type Option func(*Grammar)

// WithStart designates the start symbol checked by Validate and used by
// callers that expand without an explicit symbol.
func WithStart(symbol string) Option {
	return func(g *Grammar) { g.start = symbol }
}

// WithConfig sets the initial generation configuration.
func WithConfig(cfg Config) Option {
	return func(g *Grammar) { g.cfg = cfg }
}
