package config

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// MaxDepth is the deepest search accepted from configuration.
const MaxDepth = 8

// SearchConfig holds settings for the AI search.
type SearchConfig struct {
	// Depth overrides the difficulty when >= 0
	Depth int

	// Difficulty picks the depth when Depth is unset
	Difficulty Difficulty

	// Ordering enables static-evaluation move ordering
	Ordering bool

	// OrderingPrefix is how many moves are ranked before generation order resumes
	OrderingPrefix int

	// MirrorOrderingBias ranks highest score first for both sides
	MirrorOrderingBias bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:          -1,
		Difficulty:     Medium,
		Ordering:       true,
		OrderingPrefix: 6,
	}
}

// EffectiveDepth returns the explicit depth if set, else the difficulty's.
func (s *SearchConfig) EffectiveDepth() int {
	if s.Depth >= 0 {
		return s.Depth
	}
	return s.Difficulty.Depth()
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < -1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 0..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Difficulty < Easy || s.Difficulty > Hard {
		return fmt.Errorf("difficulty %v: %w", s.Difficulty, errors.ErrInvalidConfig)
	}
	if s.OrderingPrefix < 0 {
		return fmt.Errorf("ordering prefix %d is negative: %w", s.OrderingPrefix, errors.ErrInvalidConfig)
	}
	return nil
}
