// Package expand turns a compiled grammar.Grammar into output text by
// depth-bounded, uniformly-randomized recursive substitution.
//
// The engine is iterative: an explicit LIFO work stack replaces native call
// recursion, so arbitrarily deep or left-recursive grammars cannot overflow
// the goroutine stack. Two structural guarantees make expansion total:
//
//   - Recursion bound: a derivation path deeper than Config.MaxDepth is
//     abandoned with a visible "<recursion_limit_exceeded:sym>" marker.
//   - Undefined symbols: a non-terminal with no rules degrades to the marker
//     "<sym>" instead of failing, so partially-specified grammars remain
//     usable for exploratory authoring.
//
// Text and Generate therefore never return an error and never panic; all
// failures belong to grammar construction, not to expansion.
//
// Randomness is injected: pass WithSeed or WithRand for reproducible output
// (golden tests); without either, each call draws from its own time-seeded
// source, so concurrent calls on a shared Grammar never contend.
//
// Generate additionally records the derivation as a Tree — a flat arena of
// nodes linked by integer IDs, not a pointer-linked structure.
package expand
