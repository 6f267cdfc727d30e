// Package config holds the process-wide refinement policy spec.md §5/§6
// describes, threaded explicitly through iterator construction rather than
// kept as a mutable global (spec.md Design Notes).
package config

import "github.com/BurntSushi/toml"

// Policy bounds how far a precision iterator may refine before an
// operator that loops (DIV, LOG, TAN, COT, SEC, CSC) gives up.
type Policy struct {
	MaxPrecision uint `toml:"max_precision"`
}

// DefaultMaxPrecision is spec.md §6's conventional default.
const DefaultMaxPrecision = 10

// DefaultPolicy returns the conventional default policy.
func DefaultPolicy() Policy {
	return Policy{MaxPrecision: DefaultMaxPrecision}
}

// Load reads a Policy from a TOML file (grounded on msto63-mDW's use of
// BurntSushi/toml for its own process configuration). Missing fields fall
// back to DefaultPolicy's values.
func Load(path string) (Policy, error) {
	p := DefaultPolicy()
	_, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Policy{}, err
	}
	return p, nil
}
