// Package grammar — the rule table and its programmatic construction API.

package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gramgen/validate"
)

// Grammar is the compiled rule table: non-terminal name → ordered list of
// alternative productions, plus start symbol, configuration, and an optional
// attached validator.
//
// Alternative order reflects declaration order; selection among alternatives
// during expansion is uniform-random, so the order is semantically neutral.
type Grammar struct {
	rules     map[string][]Production
	start     string
	cfg       Config
	validator validate.Validator
}

// WithValidator attaches the validator applied to generated text.
func WithValidator(v validate.Validator) Option {
	return func(g *Grammar) { g.validator = v }
}

// New creates an empty grammar with DefaultConfig and applies opts in order.
func New(opts ...Option) *Grammar {
	g := &Grammar{
		rules: make(map[string][]Production),
		cfg:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddRule appends one alternative production for nonTerminal. Each element
// string is classified as a non-terminal reference iff it is wrapped in
// angle brackets ("<expr>"); anything else is a literal terminal.
// Repeated calls for the same name accumulate alternatives.
func (g *Grammar) AddRule(nonTerminal string, elements ...string) error {
	if nonTerminal == "" {
		return ErrEmptySymbol
	}
	if len(elements) == 0 {
		return fmt.Errorf("rule %q: %w", nonTerminal, ErrEmptyProduction)
	}

	p := make(Production, 0, len(elements))
	for _, el := range elements {
		p = append(p, classify(el))
	}

	g.rules[nonTerminal] = append(g.rules[nonTerminal], p)

	return nil
}

// AddProduction appends a pre-built alternative production for nonTerminal.
func (g *Grammar) AddProduction(nonTerminal string, p Production) error {
	if nonTerminal == "" {
		return ErrEmptySymbol
	}
	if len(p) == 0 {
		return fmt.Errorf("rule %q: %w", nonTerminal, ErrEmptyProduction)
	}

	g.rules[nonTerminal] = append(g.rules[nonTerminal], p)

	return nil
}

// classify maps an element string to a terminal or non-terminal Element.
// "<name>" is a reference; everything else is literal text.
func classify(element string) Element {
	if strings.HasPrefix(element, "<") && strings.HasSuffix(element, ">") && len(element) >= 2 {
		return NonTerm(element[1 : len(element)-1])
	}

	return Term(element)
}

// Has reports whether name has at least one production.
func (g *Grammar) Has(name string) bool {
	_, ok := g.rules[name]

	return ok
}

// Alternatives returns the ordered alternative productions for name, or nil
// if name is undefined. The returned slice is a copy; productions themselves
// are shared read-only values.
func (g *Grammar) Alternatives(name string) []Production {
	alts, ok := g.rules[name]
	if !ok {
		return nil
	}
	out := make([]Production, len(alts))
	copy(out, alts)

	return out
}

// NonTerminals lists all defined non-terminal names in sorted order.
func (g *Grammar) NonTerminals() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of defined non-terminals.
func (g *Grammar) Len() int { return len(g.rules) }

// Start returns the designated start symbol ("" if none was set).
func (g *Grammar) Start() string { return g.start }

// SetStart designates the start symbol. It is validated by Validate, not here.
func (g *Grammar) SetStart(symbol string) { g.start = symbol }

// Config returns the current generation configuration snapshot.
func (g *Grammar) Config() Config { return g.cfg }

// SetConfig replaces the generation configuration wholesale. Not safe to
// interleave with concurrent expansion on the same Grammar.
func (g *Grammar) SetConfig(cfg Config) { g.cfg = cfg }

// Validator returns the attached validator, or nil.
func (g *Grammar) Validator() validate.Validator { return g.validator }

// SetValidator attaches (or, with nil, detaches) the post-processing
// validator applied to generated text.
func (g *Grammar) SetValidator(v validate.Validator) { g.validator = v }

// Validate checks load-time invariants: if a start symbol is designated it
// must be defined. References inside productions are deliberately not
// checked — partially-specified grammars stay usable, with undefined symbols
// surfacing as marker text during expansion.
func (g *Grammar) Validate() error {
	if g.start != "" && !g.Has(g.start) {
		return fmt.Errorf("%w: start symbol %q", ErrUnknownSymbol, g.start)
	}

	return nil
}
