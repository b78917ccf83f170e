package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains the lexer into a token slice, failing the test on any error.
func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer(src)

	var out []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.kind == tokenEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexer_FullRule(t *testing.T) {
	toks := lexAll(t, `<greeting> ::= ["Hello", <subject>]`)
	kinds := make([]tokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.kind
	}
	assert.Equal(t, []tokenKind{
		tokenNonTerminal, tokenRuleSep, tokenListStart,
		tokenTerminal, tokenComma, tokenNonTerminal, tokenListEnd,
	}, kinds)
	assert.Equal(t, "greeting", toks[0].text)
	assert.Equal(t, "Hello", toks[3].text)
	assert.Equal(t, "subject", toks[5].text)
}

func TestLexer_BareTerminals(t *testing.T) {
	toks := lexAll(t, `[SELECT *, FROM]`)
	require.Len(t, toks, 6)
	assert.Equal(t, "SELECT", toks[1].text)
	assert.Equal(t, "*", toks[2].text)
	assert.Equal(t, "FROM", toks[4].text)
}

func TestLexer_SingleQuotedTerminal(t *testing.T) {
	toks := lexAll(t, `['quoted text']`)
	require.Len(t, toks, 3)
	assert.Equal(t, tokenTerminal, toks[1].kind)
	assert.Equal(t, "quoted text", toks[1].text)
}

func TestLexer_EscapedQuote(t *testing.T) {
	toks := lexAll(t, `["say \"hi\""]`)
	require.Len(t, toks, 3)
	assert.Equal(t, `say "hi"`, toks[1].text)
}

func TestLexer_SkipsCommentsAndBlankLines(t *testing.T) {
	src := "# leading comment\n\n<r> ::= [x] # trailing comment\n"
	toks := lexAll(t, src)
	require.Len(t, toks, 5)
	assert.Equal(t, tokenNonTerminal, toks[0].kind)
	// Line numbers must survive the skipped comment line.
	assert.Equal(t, 3, toks[0].line)
}

func TestLexer_UnclosedNonTerminal(t *testing.T) {
	l := newLexer("<never_closed")
	_, err := l.next()
	assert.ErrorIs(t, err, ErrUnclosedNonTerminal)
}

func TestLexer_UnclosedQuote(t *testing.T) {
	l := newLexer(`"no closing`)
	_, err := l.next()
	assert.ErrorIs(t, err, ErrUnclosedQuote)
}

func TestLexer_BadSeparator(t *testing.T) {
	l := newLexer(":= [x]")
	_, err := l.next()
	assert.ErrorIs(t, err, ErrBadSeparator)
}

func TestLexer_StrayClosingBracket(t *testing.T) {
	l := newLexer("> oops")
	_, err := l.next()
	assert.ErrorIs(t, err, ErrUnexpectedToken)
}
