// Package schema — tables and synthetic statement generation.

package schema

import (
	"fmt"
	"math/rand"
	"strings"
)

// Table is a named, ordered collection of columns.
type Table struct {
	Name    string
	Columns []Column
}

// NewTable returns an empty table definition.
func NewTable(name string) *Table {
	return &Table{Name: name}
}

// AddColumn appends a column and returns the table for chaining.
func (t *Table) AddColumn(c Column) *Table {
	t.Columns = append(t.Columns, c)

	return t
}

// Column returns the named column definition, if present.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

// CreateSQL renders the CREATE TABLE statement: column definitions first,
// then table-level FOREIGN KEY constraints in column order.
func (t *Table) CreateSQL(d Dialect) string {
	lines := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		lines = append(lines, c.SQL(d))
	}
	for _, c := range t.Columns {
		if c.Ref == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)",
			d.Quote(c.Name), d.Quote(c.Ref.Table), d.Quote(c.Ref.Column)))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n);", d.Quote(t.Name), strings.Join(lines, ",\n  "))
}

// valuePool tracks emitted primary-key and unique values per "table.column",
// letting later foreign-key columns draw from values that actually exist.
type valuePool map[string][]string

func (p valuePool) record(table, column, value string) {
	key := table + "." + column
	p[key] = append(p[key], value)
}

func (p valuePool) pick(table, column string, rng *rand.Rand) (string, bool) {
	vals := p[table+"."+column]
	if len(vals) == 0 {
		return "", false
	}

	return vals[rng.Intn(len(vals))], true
}

// InsertSQL generates count INSERT statements with synthetic values for d.
// Foreign-key columns reuse values recorded for this table's own earlier
// rows; for cross-table integrity, drive generation through Schema.DataSQL,
// which threads one shared pool over all tables in dependency order.
func (t *Table) InsertSQL(d Dialect, count int, rng *rand.Rand) []string {
	return t.insertSQL(d, count, rng, make(valuePool))
}

// insertSQL is the pool-threading implementation behind InsertSQL and
// Schema.DataSQL.
func (t *Table) insertSQL(d Dialect, count int, rng *rand.Rand, pool valuePool) []string {
	statements := make([]string, 0, count)

	for i := 0; i < count; i++ {
		names := make([]string, 0, len(t.Columns))
		values := make([]string, 0, len(t.Columns))

		for _, c := range t.Columns {
			names = append(names, d.Quote(c.Name))

			// Prefer an existing referenced value for FK columns.
			if c.Ref != nil {
				if v, ok := pool.pick(c.Ref.Table, c.Ref.Column, rng); ok {
					values = append(values, v)

					continue
				}
			}

			v := c.Type.Random(rng)
			if c.Primary || c.Uniq {
				pool.record(t.Name, c.Name, v)
			}
			values = append(values, v)
		}

		statements = append(statements, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			d.Quote(t.Name), strings.Join(names, ", "), strings.Join(values, ", ")))
	}

	return statements
}

// selectStarBias is the probability of "SELECT *" over an explicit column
// list in SelectSQL.
const selectStarBias = 0.7

// whereOperators are the comparison operators SelectSQL draws from.
var whereOperators = []string{"=", ">", "<", ">=", "<=", "<>", "LIKE"}

// SelectSQL generates one SELECT statement with whereClauses random
// conditions joined by AND. LIKE conditions against string columns wrap the
// value in wildcards.
func (t *Table) SelectSQL(d Dialect, whereClauses int, rng *rand.Rand) string {
	projection := "*"
	if rng.Float64() >= selectStarBias && len(t.Columns) > 0 {
		n := 1 + rng.Intn(len(t.Columns))
		picked := rng.Perm(len(t.Columns))[:n]
		cols := make([]string, n)
		for i, idx := range picked {
			cols[i] = d.Quote(t.Columns[idx].Name)
		}
		projection = strings.Join(cols, ", ")
	}

	query := fmt.Sprintf("SELECT %s FROM %s", projection, d.Quote(t.Name))

	if whereClauses > 0 && len(t.Columns) > 0 {
		clauses := make([]string, 0, whereClauses)
		for i := 0; i < whereClauses; i++ {
			c := t.Columns[rng.Intn(len(t.Columns))]
			op := whereOperators[rng.Intn(len(whereOperators))]

			value := c.Type.Random(rng)
			if op == "LIKE" && (c.Type.Kind == TypeVarchar || c.Type.Kind == TypeText) {
				value = "'%" + strings.Trim(value, "'") + "%'"
			}

			clauses = append(clauses, fmt.Sprintf("%s %s %s", d.Quote(c.Name), op, value))
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query + ";"
}
