// Package config loads generation profiles from YAML or TOML files.
//
// A profile bundles the knobs one generation run needs — start symbol,
// sample count, RNG seed, spacing/trim/depth configuration, and the name of
// a registered validator:
//
//	start: sql_query
//	count: 10
//	seed: 42
//	auto_spacing: true
//	max_depth: 64
//	validator: sql
//
// The file format is chosen by extension (.yaml/.yml or .toml); anything
// else is ErrUnknownFormat.
package config
