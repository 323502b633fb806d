// Package config holds the configuration of the search, the game loop,
// record output and external analysis.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/logx"
)

// Difficulty selects the search depth when no explicit depth is given.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Depth returns the search depth for the difficulty.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 4
	default:
		return 3
	}
}

// ParseDifficulty parses "easy", "medium" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("difficulty %q: %w", s, errors.ErrInvalidConfig)
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name
	Level string

	// Output receives log lines
	Output io.Writer
}

// Config holds all program configuration.
type Config struct {
	Search   *SearchConfig
	Game     *GameConfig
	Output   *OutputConfig
	Analysis *AnalysisConfig
	Log      LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:   NewSearchConfig(),
		Game:     NewGameConfig(),
		Output:   NewOutputConfig(),
		Analysis: NewAnalysisConfig(),
		Log: LogConfig{
			Level:  "info",
			Output: os.Stderr,
		},
	}
}

// SetLogOutput sets the log writer.
func (c *Config) SetLogOutput(w io.Writer) {
	c.Log.Output = w
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	_, err := logx.ParseLevel(c.Log.Level)
	return err
}
