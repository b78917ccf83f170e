// Package schema — deriving grammar rules from a schema.

package schema

import (
	"math/rand"

	"github.com/katalvlaran/gramgen/grammar"
)

// Extend derives grammar rules from the schema and adds them to g:
//
//	table_name       — one alternative per table
//	<table>_column   — one alternative per column of that table
//	qualified_column — one alternative per table.column pair
//	sql_query        — one alternative per statement kind non-terminal
//
// Grammars that already define these names gain additional alternatives.
func (s *Schema) Extend(g *grammar.Grammar) error {
	for _, t := range s.Tables {
		if err := g.AddRule("table_name", t.Name); err != nil {
			return err
		}
		for _, c := range t.Columns {
			if err := g.AddRule(t.Name+"_column", c.Name); err != nil {
				return err
			}
			if err := g.AddRule("qualified_column", t.Name+"."+c.Name); err != nil {
				return err
			}
		}
	}

	for _, stmt := range []string{"<select_stmt>", "<insert_stmt>", "<update_stmt>", "<delete_stmt>"} {
		if err := g.AddRule("sql_query", stmt); err != nil {
			return err
		}
	}

	return nil
}

// Queries generates count random SELECT statements over the schema's
// tables, each with 0–3 WHERE conditions.
func (s *Schema) Queries(d Dialect, count int, rng *rand.Rand) []string {
	if len(s.Tables) == 0 {
		return nil
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		t := s.Tables[rng.Intn(len(s.Tables))]
		out = append(out, t.SelectSQL(d, rng.Intn(4), rng))
	}

	return out
}
