package expand_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramgen/expand"
	"github.com/katalvlaran/gramgen/grammar"
	"github.com/katalvlaran/gramgen/validate"
)

// buildGreeting creates: greeting → "Hello" "world".
func buildGreeting(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	require.NoError(t, g.AddRule("greeting", "Hello", "world"))

	return g
}

func TestText_AutoSpacingOn(t *testing.T) {
	g := buildGreeting(t)
	assert.Equal(t, "Hello world", expand.Text(g, "greeting"))
}

func TestText_AutoSpacingOff(t *testing.T) {
	g := buildGreeting(t)
	cfg := grammar.Config{AutoSpacing: false, TrimOutput: false, MaxDepth: grammar.DefaultMaxDepth}
	assert.Equal(t, "Helloworld", expand.Text(g, "greeting", expand.WithConfig(cfg)))
}

func TestText_NoDoubledSpaces(t *testing.T) {
	// Tokens that already carry boundary whitespace must not gain more.
	g := grammar.New()
	require.NoError(t, g.AddRule("r", "left ", "right"))
	cfg := grammar.DefaultConfig()
	cfg.TrimOutput = false
	assert.Equal(t, "left right", expand.Text(g, "r", expand.WithConfig(cfg)))
}

func TestText_UndefinedSymbolMarker(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("start", "<missing>"))
	assert.Equal(t, "<missing>", expand.Text(g, "start"))
}

func TestText_UndefinedStartMarker(t *testing.T) {
	// Expanding a symbol with no rules at all is still total.
	g := grammar.New()
	assert.Equal(t, "<ghost>", expand.Text(g, "ghost"))
}

func TestText_RecursionLimitMarker(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("loop", "x", "<loop>"))
	cfg := grammar.DefaultConfig()
	cfg.MaxDepth = 5
	// Depth 5 admits exactly five expansions before the bound trips.
	got := expand.Text(g, "loop", expand.WithConfig(cfg))
	assert.Equal(t, "x x x x x <recursion_limit_exceeded:loop>", got)
}

func TestText_ZeroDepthIsRecursionMarker(t *testing.T) {
	g := buildGreeting(t)
	cfg := grammar.DefaultConfig()
	cfg.MaxDepth = 0
	assert.Equal(t, "<recursion_limit_exceeded:greeting>",
		expand.Text(g, "greeting", expand.WithConfig(cfg)))
}

func TestText_SeededRunsAreReproducible(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("coin", "heads"))
	require.NoError(t, g.AddRule("coin", "tails"))

	first := expand.Text(g, "coin", expand.WithSeed(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, expand.Text(g, "coin", expand.WithSeed(42)))
	}
}

func TestText_AllAlternativesReachable(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("coin", "heads"))
	require.NoError(t, g.AddRule("coin", "tails"))

	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[expand.Text(g, "coin", expand.WithRand(rng))] = true
	}
	assert.True(t, seen["heads"], "heads never produced")
	assert.True(t, seen["tails"], "tails never produced")
	assert.Len(t, seen, 2)
}

func TestText_ValidatorApplied(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("q", "select", "*", "from", "t", "where", "a", "=", "null"))

	got := expand.Text(g, "q", expand.WithValidator(validate.SQL(validate.Uppercase)))
	assert.Equal(t, "SELECT * FROM t WHERE a IS NULL", got)
}

func TestText_GrammarValidatorIsDefault(t *testing.T) {
	g := grammar.New(grammar.WithValidator(validate.SQL(validate.Lowercase)))
	require.NoError(t, g.AddRule("q", "SELECT", "1"))
	assert.Equal(t, "select 1", expand.Text(g, "q"))
}

func TestText_TrimOutput(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("r", "  padded  "))

	assert.Equal(t, "padded", expand.Text(g, "r"))

	cfg := grammar.DefaultConfig()
	cfg.TrimOutput = false
	assert.Equal(t, "  padded  ", expand.Text(g, "r", expand.WithConfig(cfg)))
}

func TestGenerate_TreeShape(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("greeting", "Hello", "<subject>"))
	require.NoError(t, g.AddRule("subject", "world"))

	res := expand.Generate(g, "greeting", expand.WithSeed(1))
	require.NotNil(t, res.Tree)
	assert.Equal(t, "greeting", res.Symbol)
	assert.Equal(t, 4, res.Tree.Len())

	root := res.Tree.Node(res.Tree.Root())
	assert.Equal(t, expand.KindNonTerminal, root.Kind)
	assert.Equal(t, "greeting", root.Value)
	require.Len(t, root.Children, 2)

	hello := res.Tree.Node(root.Children[0])
	assert.Equal(t, expand.KindTerminal, hello.Kind)
	assert.Equal(t, "Hello", hello.Value)

	subject := res.Tree.Node(root.Children[1])
	assert.Equal(t, expand.KindNonTerminal, subject.Kind)
	require.Len(t, subject.Children, 1)
	assert.Equal(t, "world", res.Tree.Node(subject.Children[0]).Value)
}

func TestGenerate_TreeRecordsMarkers(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("start", "<ghost>"))

	res := expand.Generate(g, "start")
	var kinds []expand.NodeKind
	res.Tree.Walk(res.Tree.Root(), func(_ expand.NodeID, n expand.Node) {
		kinds = append(kinds, n.Kind)
	})
	assert.Equal(t, []expand.NodeKind{expand.KindNonTerminal, expand.KindUndefined}, kinds)
}

func TestGenerate_EmptyTreeRoot(t *testing.T) {
	var tree expand.Tree
	assert.Equal(t, expand.NoNode, tree.Root())
	assert.Equal(t, 0, tree.Len())
}

func TestText_TerminatesOnPathologicalGrammar(t *testing.T) {
	// A mutually-recursive grammar with no terminals must still terminate.
	g := grammar.New()
	require.NoError(t, g.AddRule("a", "<b>", "<b>"))
	require.NoError(t, g.AddRule("b", "<a>", "<a>"))
	cfg := grammar.DefaultConfig()
	cfg.MaxDepth = 12
	got := expand.Text(g, "a", expand.WithConfig(cfg))
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "<recursion_limit_exceeded:")
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { expand.WithRand(nil) })
}

func TestWithValidator_NilPanics(t *testing.T) {
	assert.Panics(t, func() { expand.WithValidator(nil) })
}
