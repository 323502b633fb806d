package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// GameConfig holds settings for the turn loop.
type GameConfig struct {
	// AISide is the colour the AI plays
	AISide chess.Colour

	// ThinkDelay is waited before the AI starts searching
	ThinkDelay time.Duration

	// MaxPlies ends the game as a draw after this many real moves (0 = unlimited)
	MaxPlies int

	// RepetitionLimit draws the game when a position occurs this often (0 = off)
	RepetitionLimit int

	// StartFEN is the starting position; empty means the standard one
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		AISide:          chess.Black,
		ThinkDelay:      500 * time.Millisecond,
		MaxPlies:        200,
		RepetitionLimit: 3,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.AISide != chess.White && g.AISide != chess.Black {
		return fmt.Errorf("AI side %v: %w", g.AISide, errors.ErrInvalidConfig)
	}
	if g.ThinkDelay < 0 {
		return fmt.Errorf("think delay %v is negative: %w", g.ThinkDelay, errors.ErrInvalidConfig)
	}
	if g.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	if g.RepetitionLimit < 0 || g.RepetitionLimit == 1 {
		return fmt.Errorf("repetition limit %d must be 0 or at least 2: %w", g.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if g.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return nil
}
