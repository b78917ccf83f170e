// Package builder — fluent grammar construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gramgen/grammar"
	"github.com/katalvlaran/gramgen/validate"
)

// Builder accumulates rules and settings for one grammar. The zero value is
// not usable; construct with New.
type Builder struct {
	g   *grammar.Grammar
	err error // first recorded error; sticky
}

// New returns a builder over a fresh grammar configured with opts.
func New(opts ...grammar.Option) *Builder {
	return &Builder{g: grammar.New(opts...)}
}

// Rule adds one alternative production for nonTerminal, classifying each
// element as a reference iff wrapped in angle brackets. Malformed rules do
// not panic or abort: the first error is recorded and surfaced by Build.
func (b *Builder) Rule(nonTerminal string, elements ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.g.AddRule(nonTerminal, elements...); err != nil {
		b.err = fmt.Errorf("builder: rule %q: %w", nonTerminal, err)
	}

	return b
}

// Production adds a pre-built alternative production for nonTerminal.
func (b *Builder) Production(nonTerminal string, p grammar.Production) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.g.AddProduction(nonTerminal, p); err != nil {
		b.err = fmt.Errorf("builder: rule %q: %w", nonTerminal, err)
	}

	return b
}

// Start designates the start symbol, validated by Build.
func (b *Builder) Start(symbol string) *Builder {
	b.g.SetStart(symbol)

	return b
}

// Config replaces the grammar's generation configuration.
func (b *Builder) Config(cfg grammar.Config) *Builder {
	b.g.SetConfig(cfg)

	return b
}

// Validator attaches the post-processing validator.
func (b *Builder) Validator(v validate.Validator) *Builder {
	b.g.SetValidator(v)

	return b
}

// Build returns the constructed grammar, or the first error recorded during
// construction (including a designated-but-undefined start symbol).
func (b *Builder) Build() (*grammar.Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.g.Validate(); err != nil {
		return nil, err
	}

	return b.g, nil
}
