package config

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs requested from the command line.
const MaxPerftDepth = 6

// PerftConfig holds settings for move counting runs.
type PerftConfig struct {
	// Depth of the run; 0 disables it
	Depth int

	// Workers counting root moves in parallel
	Workers int

	// Entries kept in the shared perft cache; 0 disables it, -1 means unlimited
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// CacheEnabled reports whether perft counts should be cached.
func (p *PerftConfig) CacheEnabled() bool {
	return p.CacheSize != 0
}

// CacheCapacity returns the capacity to create the cache with, 0 meaning unlimited.
func (p *PerftConfig) CacheCapacity() int {
	if p.CacheSize < 0 {
		return 0
	}
	return p.CacheSize
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d outside 0..%d", p.Depth, MaxPerftDepth)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d, want at least 1", p.Workers)
	}
	if p.CacheSize < -1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft cache size %d, want -1 or more", p.CacheSize)
	}
	return nil
}
