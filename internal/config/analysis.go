package config

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// AnalysisConfig holds settings for the optional external UCI engine.
type AnalysisConfig struct {
	// EnginePath is the UCI engine binary; empty disables analysis
	EnginePath string

	// Depth is the analysis depth per position
	Depth int

	// HashMB is the engine hash table size
	HashMB int

	// Threads is the number of engine threads
	Threads int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Depth:   12,
		HashMB:  64,
		Threads: 1,
	}
}

// Enabled reports whether an engine is configured.
func (a *AnalysisConfig) Enabled() bool {
	return a.EnginePath != ""
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if !a.Enabled() {
		return nil
	}
	if a.Depth < 1 {
		return fmt.Errorf("analysis depth %d: %w", a.Depth, errors.ErrInvalidConfig)
	}
	if a.HashMB < 1 || a.Threads < 1 {
		return fmt.Errorf("analysis hash %dMB threads %d: %w", a.HashMB, a.Threads, errors.ErrInvalidConfig)
	}
	return nil
}
