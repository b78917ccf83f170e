// Package validate — Validator interface and the Chain composite.
//
// This file declares the Validator capability, the Noop validator, and
// Chain, an ordered composite that itself implements Validator.

package validate

import (
	"errors"
	"strings"
)

// ErrUnknownValidator indicates a Registry lookup for an unregistered name.
var ErrUnknownValidator = errors.New("validate: unknown validator")

// Validator transforms generated text after expansion.
//
// Implementations must be pure functions of the input text (aside from
// internal static tables such as keyword lists) and safe for concurrent use.
type Validator interface {
	// Validate returns the transformed text. It must not fail: a validator
	// that cannot improve the input returns it unchanged.
	Validate(text string) string

	// Name returns a stable identifier used for diagnostics and Registry keys.
	Name() string

	// AppliesTo reports whether this validator is relevant for text.
	// Chain consults it per member; standalone use may ignore it.
	AppliesTo(text string) bool
}

// chainNameSep joins member names into a Chain name ("a+b+c").
const chainNameSep = "+"

// Chain applies an ordered list of validators in sequence.
//
// On Validate, each member is consulted via AppliesTo against the *current*
// intermediate text; members that do not apply are skipped, leaving the text
// unchanged for that stage. Chain itself always applies.
type Chain struct {
	members []Validator
}

// NewChain builds a Chain from the given validators, in application order.
// Nil members are ignored.
func NewChain(vs ...Validator) *Chain {
	c := &Chain{members: make([]Validator, 0, len(vs))}
	for _, v := range vs {
		if v != nil {
			c.members = append(c.members, v)
		}
	}

	return c
}

// Append adds another validator to the end of the chain and returns the
// chain for fluent composition. Nil is ignored.
func (c *Chain) Append(v Validator) *Chain {
	if v != nil {
		c.members = append(c.members, v)
	}

	return c
}

// Validate folds the member validators left to right over text.
func (c *Chain) Validate(text string) string {
	result := text
	for _, v := range c.members {
		// Gate each stage on the current intermediate text, not the original.
		if v.AppliesTo(result) {
			result = v.Validate(result)
		}
	}

	return result
}

// Name returns the deterministic concatenation of member names ("a+b").
func (c *Chain) Name() string {
	names := make([]string, len(c.members))
	for i, v := range c.members {
		names[i] = v.Name()
	}

	return strings.Join(names, chainNameSep)
}

// AppliesTo always reports true; per-member gating happens inside Validate.
func (c *Chain) AppliesTo(string) bool { return true }

// Len returns the number of members in the chain.
func (c *Chain) Len() int { return len(c.members) }

// Noop is the identity validator. It is the zero-cost default for grammars
// that need no post-processing.
type Noop struct{}

// Validate returns text unchanged.
func (Noop) Validate(text string) string { return text }

// Name returns "noop".
func (Noop) Name() string { return "noop" }

// AppliesTo always reports true.
func (Noop) AppliesTo(string) bool { return true }
