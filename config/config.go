// Package config — profile loading and resolution.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gramgen/grammar"
	"github.com/katalvlaran/gramgen/validate"
)

// ErrUnknownFormat indicates a profile file whose extension is neither
// YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown profile format")

// Profile is a file-backed generation profile. Boolean fields are pointers
// so that an absent key falls back to the grammar defaults instead of false.
type Profile struct {
	// Start is the start symbol to expand.
	Start string `yaml:"start" toml:"start"`

	// Count is the number of samples to generate (0 means 1).
	Count int `yaml:"count" toml:"count"`

	// Seed, when non-zero, fixes the RNG for reproducible output.
	Seed int64 `yaml:"seed" toml:"seed"`

	// AutoSpacing / TrimOutput override the corresponding Config fields
	// when present.
	AutoSpacing *bool `yaml:"auto_spacing" toml:"auto_spacing"`
	TrimOutput  *bool `yaml:"trim_output" toml:"trim_output"`

	// MaxDepth, when positive, overrides the recursion depth bound.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`

	// Validator names a validator in the registry ("" means none).
	Validator string `yaml:"validator" toml:"validator"`
}

// Load reads and decodes the profile at path, selecting the decoder from
// the file extension.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read profile: %w", err)
	}

	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".toml":
		if err = toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return &p, nil
}

// GrammarConfig resolves the profile into a grammar.Config, starting from
// the documented defaults and applying only the keys the file set.
func (p *Profile) GrammarConfig() grammar.Config {
	cfg := grammar.DefaultConfig()
	if p.AutoSpacing != nil {
		cfg.AutoSpacing = *p.AutoSpacing
	}
	if p.TrimOutput != nil {
		cfg.TrimOutput = *p.TrimOutput
	}
	if p.MaxDepth > 0 {
		cfg.MaxDepth = p.MaxDepth
	}

	return cfg
}

// ResolveValidator looks the profile's validator name up in reg.
// An empty name resolves to nil (no post-processing).
func (p *Profile) ResolveValidator(reg *validate.Registry) (validate.Validator, error) {
	if p.Validator == "" {
		return nil, nil
	}

	return reg.Get(p.Validator)
}

// Samples returns the sample count, defaulting to 1.
func (p *Profile) Samples() int {
	if p.Count <= 0 {
		return 1
	}

	return p.Count
}
