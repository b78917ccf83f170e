// Package expand — the stack-based expansion engine.
//
// Expansion processes an explicit LIFO work stack of (element, depth,
// parent) frames. Elements of a chosen production are pushed in reverse so
// they pop in original left-to-right order, which keeps both the output
// token sequence and the derivation tree children ordered.
//
// Complexity: O(MaxDepth × branching factor) frames worst case, independent
// of grammar size; each frame does O(1) work plus token emission.

package expand

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/gramgen/grammar"
)

// recursionMarkerPrefix tags branches abandoned at the depth bound; the
// offending symbol name follows the colon.
const recursionMarkerPrefix = "<recursion_limit_exceeded:"

// Result is the outcome of Generate: the final text, the start symbol it was
// derived from, and the full derivation tree.
type Result struct {
	// Text is the joined, validated, optionally trimmed output.
	Text string

	// Symbol is the start symbol used for this derivation.
	Symbol string

	// Tree records every derivation step, including undefined-symbol and
	// recursion-limit markers.
	Tree *Tree
}

// Text expands start against g and returns the generated text. It is total:
// whatever the grammar looks like, it terminates and returns a string —
// possibly containing marker text for undefined symbols or abandoned
// recursive branches — and never returns an error.
func Text(g *grammar.Grammar, start string, opts ...Option) string {
	return Generate(g, start, opts...).Text
}

// Generate expands start against g and returns the text together with the
// derivation tree. Like Text, it is total.
func Generate(g *grammar.Grammar, start string, opts ...Option) Result {
	o := newOptions(opts...)

	cfg := g.Config()
	if o.cfg != nil {
		cfg = *o.cfg
	}

	rng := o.rng
	if rng == nil {
		// Per-call source: concurrent calls never share mutable RNG state.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	validator := o.validator
	if validator == nil {
		validator = g.Validator()
	}

	tokens, tree := run(g, start, cfg.MaxDepth, rng)

	text := join(tokens, cfg.AutoSpacing)
	if validator != nil {
		text = validator.Validate(text)
	}
	if cfg.TrimOutput {
		text = strings.TrimSpace(text)
	}

	return Result{Text: text, Symbol: start, Tree: tree}
}

// frame is one unit of pending work: an element awaiting processing at a
// given derivation depth, attached under parent in the tree.
type frame struct {
	el     grammar.Element
	depth  int
	parent NodeID
}

// run executes the work stack and returns the raw token sequence plus the
// derivation tree.
func run(g *grammar.Grammar, start string, maxDepth int, rng *rand.Rand) ([]string, *Tree) {
	tree := &Tree{}
	tokens := make([]string, 0, 16)

	// Seed the stack with the start symbol at depth 0.
	stack := []frame{{el: grammar.NonTerm(start), depth: 0, parent: NoNode}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.el.Kind == grammar.Terminal {
			tokens = append(tokens, f.el.Text)
			tree.add(KindTerminal, f.el.Text, f.parent)

			continue
		}

		sym := f.el.Text
		switch {
		case f.depth >= maxDepth:
			// Abandon the branch: emit the marker, push nothing.
			tokens = append(tokens, recursionMarkerPrefix+sym+">")
			tree.add(KindRecursionLimit, sym, f.parent)

		case !g.Has(sym):
			// Undefined reference degrades to visible marker text.
			tokens = append(tokens, "<"+sym+">")
			tree.add(KindUndefined, sym, f.parent)

		default:
			alts := g.Alternatives(sym)
			// Uniform-random choice; alternative order carries no weight.
			prod := alts[rng.Intn(len(alts))]

			id := tree.add(KindNonTerminal, sym, f.parent)
			// Reverse push so elements pop left to right.
			for i := len(prod) - 1; i >= 0; i-- {
				stack = append(stack, frame{el: prod[i], depth: f.depth + 1, parent: id})
			}
		}
	}

	return tokens, tree
}

// join concatenates the output tokens. With autoSpacing, exactly one space
// separates adjacent tokens unless the left token already ends in whitespace
// or the right one begins with it — doubled and missing separators are both
// impossible regardless of how tokens were produced.
func join(tokens []string, autoSpacing bool) string {
	if !autoSpacing {
		return strings.Join(tokens, "")
	}

	var b strings.Builder

	var last rune // last rune written, 0 before any output
	for _, tok := range tokens {
		if last != 0 && !unicode.IsSpace(last) && !startsWithSpace(tok) {
			b.WriteByte(' ')
			last = ' '
		}
		b.WriteString(tok)
		if tok != "" {
			last, _ = utf8.DecodeLastRuneInString(tok)
		}
	}

	return b.String()
}

// startsWithSpace reports whether s begins with a whitespace rune.
func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)

	return size > 0 && unicode.IsSpace(r)
}
