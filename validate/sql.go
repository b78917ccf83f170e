// Package validate — SQL-specific validators.
//
// SQLNull repairs comparisons against NULL; SQLKeyword normalizes keyword
// casing. Both restrict themselves via AppliesTo to text that looks SQL-like,
// so they are safe members of a general-purpose chain.

package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// sqlNullReplacer rewrites comparison operators combined with NULL into the
// standard IS NULL / IS NOT NULL forms. The pairs are exhaustive over the
// operators a generated WHERE clause can produce.
var sqlNullReplacer = strings.NewReplacer(
	" = NULL", " IS NULL",
	" = null", " IS NULL",
	" != NULL", " IS NOT NULL",
	" != null", " IS NOT NULL",
	" <> NULL", " IS NOT NULL",
	" <> null", " IS NOT NULL",
	" >= NULL", " IS NOT NULL",
	" >= null", " IS NOT NULL",
	" <= NULL", " IS NOT NULL",
	" <= null", " IS NOT NULL",
	" > NULL", " IS NOT NULL",
	" > null", " IS NOT NULL",
	" < NULL", " IS NOT NULL",
	" < null", " IS NOT NULL",
)

// SQLNull rewrites invalid NULL comparisons ("x = NULL") into their valid
// IS NULL / IS NOT NULL forms.
type SQLNull struct{}

// Validate applies the NULL-comparison rewrite table to sql.
func (SQLNull) Validate(sql string) string {
	return sqlNullReplacer.Replace(sql)
}

// Name returns "sql_null".
func (SQLNull) Name() string { return "sql_null" }

// AppliesTo reports true only for SQL-looking text: anything containing
// SELECT, WHERE, FROM, or NULL (case-insensitively).
func (SQLNull) AppliesTo(text string) bool {
	upper := strings.ToUpper(text)

	return strings.Contains(upper, "SELECT") ||
		strings.Contains(upper, "WHERE") ||
		strings.Contains(upper, "FROM") ||
		strings.Contains(upper, "NULL")
}

// CaseStyle selects how SQLKeyword renders matched keywords.
type CaseStyle uint8

const (
	// Uppercase renders keywords as SELECT, FROM, ...
	Uppercase CaseStyle = iota
	// Lowercase renders keywords as select, from, ...
	Lowercase
	// Capitalize renders keywords as Select, From, ...
	Capitalize
)

// sqlKeywords is the fixed list of keywords SQLKeyword normalizes.
// Multi-word entries ("GROUP BY") are matched as whole phrases.
var sqlKeywords = []string{
	"SELECT", "FROM", "WHERE",
	"GROUP BY", "ORDER BY", "HAVING",
	"JOIN", "LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "OUTER JOIN", "ON",
	"AND", "OR", "NOT", "IN", "BETWEEN", "LIKE",
	"IS NULL", "IS NOT NULL",
	"AS", "DISTINCT", "UNION", "ALL",
	"INSERT", "UPDATE", "DELETE",
	"CREATE", "ALTER", "DROP",
	"TABLE", "VIEW", "INDEX",
	"CONSTRAINT", "PRIMARY KEY", "FOREIGN KEY", "REFERENCES",
}

// SQLKeyword rewrites every known SQL keyword, matched case-insensitively as
// a whole word, into the configured CaseStyle. Construct with NewSQLKeyword;
// the zero value is not usable.
type SQLKeyword struct {
	style CaseStyle
	res   []*regexp.Regexp // one whole-word matcher per keyword
	repl  []string         // the rendering of each keyword in style
}

// NewSQLKeyword builds a keyword-case validator for the given style.
// The keyword matchers are compiled once here, not per Validate call.
func NewSQLKeyword(style CaseStyle) *SQLKeyword {
	v := &SQLKeyword{
		style: style,
		res:   make([]*regexp.Regexp, len(sqlKeywords)),
		repl:  make([]string, len(sqlKeywords)),
	}
	for i, kw := range sqlKeywords {
		v.res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		v.repl[i] = renderCase(kw, style)
	}

	return v
}

// renderCase renders keyword (canonically uppercase) in the requested style.
func renderCase(keyword string, style CaseStyle) string {
	switch style {
	case Lowercase:
		return strings.ToLower(keyword)
	case Capitalize:
		runes := []rune(strings.ToLower(keyword))
		runes[0] = unicode.ToUpper(runes[0])

		return string(runes)
	default:
		return keyword
	}
}

// Validate rewrites all keyword occurrences in sql to the configured case.
func (v *SQLKeyword) Validate(sql string) string {
	result := sql
	for i, re := range v.res {
		result = re.ReplaceAllLiteralString(result, v.repl[i])
	}

	return result
}

// Name returns sql_uppercase, sql_lowercase, or sql_capitalize.
func (v *SQLKeyword) Name() string {
	switch v.style {
	case Lowercase:
		return "sql_lowercase"
	case Capitalize:
		return "sql_capitalize"
	default:
		return "sql_uppercase"
	}
}

// AppliesTo reports true for text containing SELECT or FROM
// (case-insensitively).
func (v *SQLKeyword) AppliesTo(text string) bool {
	upper := strings.ToUpper(text)

	return strings.Contains(upper, "SELECT") || strings.Contains(upper, "FROM")
}

// SQL builds the canonical SQL post-processing chain: NULL-comparison repair
// followed by keyword case normalization in the given style.
func SQL(style CaseStyle) *Chain {
	return NewChain(SQLNull{}, NewSQLKeyword(style))
}
