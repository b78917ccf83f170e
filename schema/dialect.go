// Package schema — SQL dialect abstraction.
//
// A Dialect localizes the few places engines disagree: identifier quoting,
// type names, and auto-increment syntax. Statement shapes are shared.

package schema

import "fmt"

// Dialect renders engine-specific SQL fragments.
type Dialect interface {
	// Name identifies the dialect ("mysql", "postgres", ...).
	Name() string

	// Quote wraps an identifier in the dialect's quoting characters.
	Quote(ident string) string

	// TypeName renders a column type declaration.
	TypeName(t Type) string

	// AutoIncrement returns the clause appended to auto-incrementing
	// integer primary keys ("" when the dialect has no such clause).
	AutoIncrement() string
}

// ansiTypeName covers the type names the dialects agree on.
func ansiTypeName(t Type) string {
	switch t.Kind {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeVarchar:
		return fmt.Sprintf("VARCHAR(%d)", t.Size)
	case TypeText:
		return "TEXT"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeUUID:
		return "UUID"
	default:
		return "TEXT"
	}
}

// ANSI is the portable default dialect: double-quoted identifiers, standard
// type names, no auto-increment clause.
type ANSI struct{}

func (ANSI) Name() string              { return "ansi" }
func (ANSI) Quote(ident string) string { return `"` + ident + `"` }
func (ANSI) TypeName(t Type) string    { return ansiTypeName(t) }
func (ANSI) AutoIncrement() string     { return "" }

// MySQL quotes with backticks and stores UUIDs as CHAR(36).
type MySQL struct{}

func (MySQL) Name() string              { return "mysql" }
func (MySQL) Quote(ident string) string { return "`" + ident + "`" }

func (MySQL) TypeName(t Type) string {
	if t.Kind == TypeUUID {
		return "CHAR(36)"
	}

	return ansiTypeName(t)
}

func (MySQL) AutoIncrement() string { return "AUTO_INCREMENT" }

// Postgres uses identity columns for auto-increment.
type Postgres struct{}

func (Postgres) Name() string              { return "postgres" }
func (Postgres) Quote(ident string) string { return `"` + ident + `"` }
func (Postgres) TypeName(t Type) string    { return ansiTypeName(t) }
func (Postgres) AutoIncrement() string     { return "GENERATED ALWAYS AS IDENTITY" }

// SQLite has dynamic typing; booleans and UUIDs degrade to INTEGER and TEXT.
type SQLite struct{}

func (SQLite) Name() string              { return "sqlite" }
func (SQLite) Quote(ident string) string { return `"` + ident + `"` }

func (SQLite) TypeName(t Type) string {
	switch t.Kind {
	case TypeBoolean:
		return "INTEGER"
	case TypeUUID:
		return "TEXT"
	default:
		return ansiTypeName(t)
	}
}

func (SQLite) AutoIncrement() string { return "AUTOINCREMENT" }
