// Package expand — functional options for expansion calls.
//
// Contract: option constructors validate and panic on meaningless inputs
// (nil RNG, nil validator); the expansion itself never panics.

package expand

import (
	"math/rand"

	"github.com/katalvlaran/gramgen/grammar"
	"github.com/katalvlaran/gramgen/validate"
)

// Option configures one expansion call.
type Option func(*options)

// options aggregates per-call knobs, resolved by newOptions.
type options struct {
	rng       *rand.Rand         // nil → fresh time-seeded source per call
	validator validate.Validator // nil → use the grammar's attached validator
	cfg       *grammar.Config    // nil → use the grammar's config snapshot
}

// newOptions applies opts in order; later options override earlier ones.
func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRand provides an explicit RNG for alternative selection.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("expand: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithSeed derives a deterministic RNG from seed, making output reproducible
// for golden tests.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithValidator overrides the grammar's attached validator for this call.
// Panics on nil; detach via grammar.SetValidator(nil) instead.
func WithValidator(v validate.Validator) Option {
	if v == nil {
		panic("expand: WithValidator(nil)")
	}

	return func(o *options) { o.validator = v }
}

// WithConfig overrides the grammar's configuration snapshot for this call.
func WithConfig(cfg grammar.Config) Option {
	return func(o *options) { o.cfg = &cfg }
}
