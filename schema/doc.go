// Package schema models SQL tables, columns, and dialects, and derives both
// grammar rules and synthetic row data from them.
//
// A Schema is a set of Tables built fluently:
//
//	users := schema.NewTable("users").
//		AddColumn(schema.NewColumn("id", schema.Integer()).PrimaryKey().AutoIncrement()).
//		AddColumn(schema.NewColumn("email", schema.Varchar(100)).NotNull().Unique())
//
// From a schema you can emit dialect-specific DDL (CreateSQL), synthetic
// INSERT/SELECT statements with referentially-consistent random values
// (DataSQL, InsertSQL, SelectSQL), and grammar rules for the expansion
// engine (Extend).
//
// Foreign-key references induce a dependency graph over tables; TableOrder
// computes a creation order via depth-first topological sort and reports
// ErrCycleDetected for circular references instead of looping or aborting.
//
// Randomness is injected as a *rand.Rand everywhere, so synthetic data is
// reproducible under a fixed seed.
package schema
