package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramgen/validate"
)

func TestNoop_PassesThrough(t *testing.T) {
	v := validate.Noop{}
	assert.Equal(t, "noop", v.Name())
	assert.True(t, v.AppliesTo("anything at all"))
	assert.Equal(t, "select * from t", v.Validate("select * from t"))
}

func TestSQLNull_RewritesEqualityComparisons(t *testing.T) {
	v := validate.SQLNull{}
	cases := map[string]string{
		"a = NULL":         "a IS NULL",
		"a = null":         "a IS NULL",
		"a != NULL":        "a IS NOT NULL",
		"a != null":        "a IS NOT NULL",
		"a <> NULL":        "a IS NOT NULL",
		"a > null":         "a IS NOT NULL",
		"a >= NULL":        "a IS NOT NULL",
		"a <= null":        "a IS NOT NULL",
		"a < NULL":         "a IS NOT NULL",
		"a IS NULL":        "a IS NULL",
		"price = NULL AND qty != null": "price IS NULL AND qty IS NOT NULL",
	}
	for in, want := range cases {
		assert.Equal(t, want, v.Validate(in), "input %q", in)
	}
}

func TestSQLNull_AppliesToSQLTextOnly(t *testing.T) {
	v := validate.SQLNull{}
	assert.True(t, v.AppliesTo("SELECT * FROM t"))
	assert.True(t, v.AppliesTo("select id from t"))
	assert.True(t, v.AppliesTo("x = null"))
	assert.False(t, v.AppliesTo("hello world"))
}

func TestSQLKeyword_Uppercase(t *testing.T) {
	v := validate.NewSQLKeyword(validate.Uppercase)
	got := v.Validate("select id from users where active order by id")
	assert.Equal(t, "SELECT id FROM users WHERE active ORDER BY id", got)
}

func TestSQLKeyword_Lowercase(t *testing.T) {
	v := validate.NewSQLKeyword(validate.Lowercase)
	got := v.Validate("SELECT id FROM users WHERE active")
	assert.Equal(t, "select id from users where active", got)
}

func TestSQLKeyword_Capitalize(t *testing.T) {
	v := validate.NewSQLKeyword(validate.Capitalize)
	got := v.Validate("SELECT * FROM users WHERE id = 1")
	assert.Equal(t, "Select * From users Where id = 1", got)
}

func TestSQLKeyword_WordBoundaries(t *testing.T) {
	// Keywords embedded in identifiers must stay untouched.
	v := validate.NewSQLKeyword(validate.Uppercase)
	got := v.Validate("select selection from fromage")
	assert.Equal(t, "SELECT selection FROM fromage", got)
}

func TestSQLKeyword_AppliesToQueriesOnly(t *testing.T) {
	v := validate.NewSQLKeyword(validate.Uppercase)
	assert.True(t, v.AppliesTo("select 1"))
	assert.True(t, v.AppliesTo("DELETE FROM t"))
	assert.False(t, v.AppliesTo("just plain text"))
}

func TestChain_AppliesValidatorsInOrder(t *testing.T) {
	c := validate.SQL(validate.Uppercase)
	got := c.Validate("select * from t where a = null")
	assert.Equal(t, "SELECT * FROM t WHERE a IS NULL", got)
}

func TestChain_NameJoinsMembers(t *testing.T) {
	c := validate.NewChain(validate.SQLNull{}, validate.NewSQLKeyword(validate.Lowercase))
	assert.Equal(t, "sql_null+sql_lowercase", c.Name())
	assert.Equal(t, 2, c.Len())
}

func TestChain_SkipsInapplicableMembers(t *testing.T) {
	// Non-SQL text passes through both members unchanged.
	c := validate.SQL(validate.Uppercase)
	assert.Equal(t, "a quick brown fox", c.Validate("a quick brown fox"))
}

func TestChain_AppendExtends(t *testing.T) {
	c := validate.NewChain(validate.SQLNull{})
	c.Append(validate.NewSQLKeyword(validate.Uppercase))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "SELECT * FROM t WHERE x IS NULL",
		c.Validate("select * from t where x = null"))
}

func TestRegistry_DefaultsResolve(t *testing.T) {
	for _, name := range []string{
		"noop", "sql_null", "sql_uppercase", "sql_lowercase", "sql_capitalize", "sql",
	} {
		v, err := validate.DefaultRegistry().Get(name)
		require.NoError(t, err, "validator %q", name)
		require.NotNil(t, v)
	}
}

func TestRegistry_UnknownName(t *testing.T) {
	_, err := validate.DefaultRegistry().Get("nope")
	assert.ErrorIs(t, err, validate.ErrUnknownValidator)
}

func TestRegistry_NamesPreserveRegistrationOrder(t *testing.T) {
	r := validate.NewRegistry()
	r.Register("b", validate.Noop{})
	r.Register("a", validate.Noop{})
	assert.Equal(t, []string{"b", "a"}, r.Names())
}
