package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom starts from a copy of cfg. Changes made through
// the builder do not reach cfg.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	search, game, output, analysis := *cfg.Search, *cfg.Game, *cfg.Output, *cfg.Analysis
	return &ConfigBuilder{
		cfg: &Config{
			Search:   &search,
			Game:     &game,
			Output:   &output,
			Analysis: &analysis,
			Log:      cfg.Log,
		},
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets an explicit search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithDifficulty sets the difficulty.
func (b *ConfigBuilder) WithDifficulty(d Difficulty) *ConfigBuilder {
	b.cfg.Search.Difficulty = d
	return b
}

// WithOrdering enables or disables move ordering and sets the prefix.
func (b *ConfigBuilder) WithOrdering(enabled bool, prefix int) *ConfigBuilder {
	b.cfg.Search.Ordering = enabled
	b.cfg.Search.OrderingPrefix = prefix
	return b
}

// WithMirrorOrderingBias controls the orderer's polarity for White.
func (b *ConfigBuilder) WithMirrorOrderingBias(enabled bool) *ConfigBuilder {
	b.cfg.Search.MirrorOrderingBias = enabled
	return b
}

// WithAISide sets the colour played by the AI.
func (b *ConfigBuilder) WithAISide(side chess.Colour) *ConfigBuilder {
	b.cfg.Game.AISide = side
	return b
}

// WithThinkDelay sets the pause before the AI searches.
func (b *ConfigBuilder) WithThinkDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Game.ThinkDelay = d
	return b
}

// WithMaxPlies sets the ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = n
	return b
}

// WithRepetitionLimit sets the repetition draw limit.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Game.RepetitionLimit = n
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithRecordFile sets the record output file.
func (b *ConfigBuilder) WithRecordFile(path string, compress bool) *ConfigBuilder {
	b.cfg.Output.RecordFile = path
	b.cfg.Output.Compress = compress
	return b
}

// WithEngine enables external analysis.
func (b *ConfigBuilder) WithEngine(path string, depth int) *ConfigBuilder {
	b.cfg.Analysis.EnginePath = path
	b.cfg.Analysis.Depth = depth
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Output = w
	return b
}
