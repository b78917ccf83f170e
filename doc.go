// Package gramgen compiles BNF-like grammar descriptions into in-memory rule
// tables and stochastically expands them into text — plain sentences,
// SQL-like statements, code-like snippets — under configurable limits.
//
// What is gramgen?
//
//	A small, deterministic-when-seeded library for generating synthetic but
//	syntactically valid samples, built from:
//		• grammar/  — the compiled rule table: elements, productions, config
//		• parser/   — lexer + recursive-descent parser for grammar files
//		• expand/   — depth-bounded, uniformly-randomized expansion engine
//		• validate/ — composable post-processing validators (SQL repair, casing)
//		• schema/   — SQL schema modeling, dialects, synthetic rows, FK ordering
//		• builder/  — fluent programmatic grammar construction
//		• config/   — YAML/TOML generation profiles
//
// Why gramgen?
//
//   - Total generation – expansion never fails: undefined symbols and
//     exhausted recursion budgets degrade to visible marker text
//   - Reproducible – inject a seeded RNG for golden-file tests
//   - Safe to share – a compiled Grammar is read-only during generation
//
// Quick example:
//
//	g, err := builder.New().
//		Rule("greeting", "Hello", "<subject>").
//		Rule("subject", "world").
//		Rule("subject", "Go", "programmers").
//		Build()
//	if err != nil { ... }
//	fmt.Println(expand.Text(g, "greeting", expand.WithSeed(1)))
//
// Generation only: gramgen never parses text *against* a grammar; it only
// derives text *from* one, uniformly at random among alternatives.
package gramgen
