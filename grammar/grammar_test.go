package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramgen/grammar"
)

// buildGreeting creates a two-rule grammar used across tests:
// greeting → "Hello" <subject>; subject → "world" | "Go".
func buildGreeting(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New(grammar.WithStart("greeting"))
	require.NoError(t, g.AddRule("greeting", "Hello", "<subject>"))
	require.NoError(t, g.AddRule("subject", "world"))
	require.NoError(t, g.AddRule("subject", "Go"))

	return g
}

func TestAddRule_ClassifiesElements(t *testing.T) {
	g := buildGreeting(t)
	alts := g.Alternatives("greeting")
	require.Len(t, alts, 1)
	require.Len(t, alts[0], 2)
	assert.Equal(t, grammar.Term("Hello"), alts[0][0])
	assert.Equal(t, grammar.NonTerm("subject"), alts[0][1])
}

func TestAddRule_AccumulatesAlternatives(t *testing.T) {
	g := buildGreeting(t)
	alts := g.Alternatives("subject")
	require.Len(t, alts, 2)
	assert.Equal(t, grammar.Term("world"), alts[0][0])
	assert.Equal(t, grammar.Term("Go"), alts[1][0])
}

func TestAddRule_EmptyProduction(t *testing.T) {
	g := grammar.New()
	err := g.AddRule("x")
	assert.ErrorIs(t, err, grammar.ErrEmptyProduction)
}

func TestAddRule_EmptySymbol(t *testing.T) {
	g := grammar.New()
	err := g.AddRule("", "hello")
	assert.ErrorIs(t, err, grammar.ErrEmptySymbol)
}

func TestAddProduction_Prebuilt(t *testing.T) {
	g := grammar.New()
	p, err := grammar.NewProduction(grammar.Term("a"), grammar.NonTerm("b"))
	require.NoError(t, err)
	require.NoError(t, g.AddProduction("r", p))
	assert.True(t, g.Has("r"))
}

func TestNewProduction_Empty(t *testing.T) {
	_, err := grammar.NewProduction()
	assert.ErrorIs(t, err, grammar.ErrEmptyProduction)
}

func TestAlternatives_UndefinedSymbol(t *testing.T) {
	g := grammar.New()
	assert.Nil(t, g.Alternatives("ghost"))
	assert.False(t, g.Has("ghost"))
}

func TestAlternatives_ReturnsCopy(t *testing.T) {
	g := buildGreeting(t)
	alts := g.Alternatives("subject")
	alts[0] = nil
	// The grammar itself must be unaffected by caller mutation.
	assert.NotNil(t, g.Alternatives("subject")[0])
}

func TestNonTerminals_Sorted(t *testing.T) {
	g := buildGreeting(t)
	assert.Equal(t, []string{"greeting", "subject"}, g.NonTerminals())
	assert.Equal(t, 2, g.Len())
}

func TestValidate_StartDefined(t *testing.T) {
	g := buildGreeting(t)
	assert.NoError(t, g.Validate())
}

func TestValidate_StartUndefined(t *testing.T) {
	g := grammar.New(grammar.WithStart("missing"))
	assert.ErrorIs(t, g.Validate(), grammar.ErrUnknownSymbol)
}

func TestValidate_NoStartIsFine(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddRule("r", "x"))
	assert.NoError(t, g.Validate())
}

func TestConfig_Defaults(t *testing.T) {
	cfg := grammar.New().Config()
	assert.True(t, cfg.AutoSpacing)
	assert.True(t, cfg.TrimOutput)
	assert.Equal(t, grammar.DefaultMaxDepth, cfg.MaxDepth)
}

func TestConfig_SetAndGet(t *testing.T) {
	g := grammar.New(grammar.WithConfig(grammar.Config{MaxDepth: 7}))
	assert.Equal(t, 7, g.Config().MaxDepth)
	assert.False(t, g.Config().AutoSpacing)

	g.SetConfig(grammar.DefaultConfig())
	assert.Equal(t, grammar.DefaultMaxDepth, g.Config().MaxDepth)
}

func TestStart_SetAndGet(t *testing.T) {
	g := grammar.New()
	assert.Equal(t, "", g.Start())
	g.SetStart("query")
	assert.Equal(t, "query", g.Start())
}

func TestElement_String(t *testing.T) {
	assert.Equal(t, "<expr>", grammar.NonTerm("expr").String())
	assert.Equal(t, `"SELECT"`, grammar.Term("SELECT").String())
}

func TestProduction_String(t *testing.T) {
	p, err := grammar.NewProduction(grammar.Term("SELECT"), grammar.NonTerm("column"))
	require.NoError(t, err)
	assert.Equal(t, `["SELECT", <column>]`, p.String())
}
