// Package schema — schema-level DDL/DML generation and table ordering.
//
// TableOrder computes a foreign-key-respecting creation order via
// depth-first topological sort with White/Gray/Black vertex states; a Gray
// revisit is a back-edge, i.e. circular references (ErrCycleDetected).
//
// Complexity: O(T + R) for T tables and R references; O(T) extra space.

package schema

import (
	"fmt"
	"math/rand"
	"strings"
)

// Visitation states for the dependency walk.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully processed
)

// Schema is an ordered collection of tables.
type Schema struct {
	Tables []*Table
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// AddTable appends a table and returns the schema for chaining.
func (s *Schema) AddTable(t *Table) *Schema {
	s.Tables = append(s.Tables, t)

	return s
}

// Table returns the named table, if present.
func (s *Schema) Table(name string) (*Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}

	return nil, false
}

// CreateSQL renders CREATE TABLE statements for every table in declaration
// order, separated by blank lines.
func (s *Schema) CreateSQL(d Dialect) string {
	stmts := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		stmts[i] = t.CreateSQL(d)
	}

	return strings.Join(stmts, "\n\n")
}

// TableOrder returns table names ordered so that every referenced table
// precedes its referencers. Foreign keys into tables outside the schema are
// ErrUnknownTable; circular references are ErrCycleDetected.
func (s *Schema) TableOrder() ([]string, error) {
	state := make(map[string]int, len(s.Tables))
	order := make([]string, 0, len(s.Tables))

	var visit func(t *Table) error
	visit = func(t *Table) error {
		switch state[t.Name] {
		case gray:
			return fmt.Errorf("%w: via table %q", ErrCycleDetected, t.Name)
		case black:
			return nil
		}
		state[t.Name] = gray

		// Referenced tables first; self-references are permitted (a row may
		// point at an earlier row of its own table).
		for _, c := range t.Columns {
			if c.Ref == nil || c.Ref.Table == t.Name {
				continue
			}
			dep, ok := s.Table(c.Ref.Table)
			if !ok {
				return fmt.Errorf("%w: %q referenced by %s.%s",
					ErrUnknownTable, c.Ref.Table, t.Name, c.Name)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[t.Name] = black
		order = append(order, t.Name)

		return nil
	}

	for _, t := range s.Tables {
		if state[t.Name] == white {
			if err := visit(t); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// DataSQL renders the full synthetic dataset: for each table in dependency
// order, its CREATE TABLE statement followed by rowsPerTable INSERTs.
// One value pool is threaded through all tables, so foreign-key columns
// always cite primary-key or unique values that were actually emitted.
func (s *Schema) DataSQL(d Dialect, rowsPerTable int, rng *rand.Rand) (string, error) {
	order, err := s.TableOrder()
	if err != nil {
		return "", err
	}

	pool := make(valuePool)

	var b strings.Builder
	for _, name := range order {
		t, _ := s.Table(name)

		b.WriteString(t.CreateSQL(d))
		b.WriteString("\n\n")
		for _, stmt := range t.insertSQL(d, rowsPerTable, rng, pool) {
			b.WriteString(stmt)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
