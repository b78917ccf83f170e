// Package schema — column definitions.

package schema

import "strings"

// ForeignKey names the table and column a column references.
type ForeignKey struct {
	Table  string
	Column string
}

// Column is one column definition. Build it fluently from NewColumn;
// the chainable modifiers return an updated copy, so columns compose as
// values.
type Column struct {
	Name     string
	Type     Type
	Primary  bool
	Nullable bool
	Uniq     bool
	AutoInc  bool
	Ref      *ForeignKey
}

// NewColumn returns a nullable column of the given name and type.
func NewColumn(name string, t Type) Column {
	return Column{Name: name, Type: t, Nullable: true}
}

// PrimaryKey marks the column as primary key (implies NOT NULL).
func (c Column) PrimaryKey() Column {
	c.Primary = true
	c.Nullable = false

	return c
}

// NotNull forbids NULL values.
func (c Column) NotNull() Column {
	c.Nullable = false

	return c
}

// Unique adds a UNIQUE constraint.
func (c Column) Unique() Column {
	c.Uniq = true

	return c
}

// AutoIncrement marks the column as auto-incrementing; the rendered clause
// is dialect-specific and may be empty.
func (c Column) AutoIncrement() Column {
	c.AutoInc = true

	return c
}

// References adds a foreign-key reference to table(column).
func (c Column) References(table, column string) Column {
	c.Ref = &ForeignKey{Table: table, Column: column}

	return c
}

// SQL renders the column definition for d: name, type, and constraint
// clauses in PRIMARY KEY / auto-increment / NOT NULL / UNIQUE order.
// The FOREIGN KEY clause is table-level and rendered by Table.CreateSQL.
func (c Column) SQL(d Dialect) string {
	parts := []string{d.Quote(c.Name), d.TypeName(c.Type)}

	if c.Primary {
		parts = append(parts, "PRIMARY KEY")
	}
	if c.AutoInc {
		if clause := d.AutoIncrement(); clause != "" {
			parts = append(parts, clause)
		}
	}
	if !c.Nullable && !c.Primary {
		// PRIMARY KEY already implies NOT NULL.
		parts = append(parts, "NOT NULL")
	}
	if c.Uniq {
		parts = append(parts, "UNIQUE")
	}

	return strings.Join(parts, " ")
}
