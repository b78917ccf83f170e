// Package validate — named validator registry.
//
// The Registry maps stable names to shared Validator handles so that
// configuration files and CLI flags can select post-processing by name.

package validate

import "fmt"

// Registry stores validators under stable names, preserving registration
// order for listing. Validators are shared handles: registering the same
// instance under two names is allowed and cheap.
//
// A Registry is not safe for concurrent mutation; build it up front and
// treat it as read-only afterwards.
type Registry struct {
	names  []string
	byName map[string]Validator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Validator)}
}

// Register stores v under name, overwriting any previous entry with the same
// name, and returns the registry for chaining. Nil validators are ignored.
func (r *Registry) Register(name string, v Validator) *Registry {
	if v == nil {
		return r
	}
	if _, seen := r.byName[name]; !seen {
		r.names = append(r.names, name)
	}
	r.byName[name] = v

	return r
}

// Get returns the validator registered under name.
// Unregistered names yield ErrUnknownValidator.
func (r *Registry) Get(name string) (Validator, error) {
	v, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}

	return v, nil
}

// Names lists all registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// RegisterDefaults installs the built-in validators under their canonical
// names: noop, sql_null, sql_uppercase, sql_lowercase, sql_capitalize, and
// the combined "sql" chain (NULL repair + uppercase keywords).
func (r *Registry) RegisterDefaults() *Registry {
	return r.
		Register("noop", Noop{}).
		Register("sql_null", SQLNull{}).
		Register("sql_uppercase", NewSQLKeyword(Uppercase)).
		Register("sql_lowercase", NewSQLKeyword(Lowercase)).
		Register("sql_capitalize", NewSQLKeyword(Capitalize)).
		Register("sql", SQL(Uppercase))
}

// DefaultRegistry returns a fresh registry preloaded with the built-ins.
func DefaultRegistry() *Registry {
	return NewRegistry().RegisterDefaults()
}
