package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// OutputConfig holds settings for writing the game record.
type OutputConfig struct {
	// RecordFile receives the PGN of the game; empty disables recording
	RecordFile string

	// Compress writes the record with zstd
	Compress bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}

// ShouldCompress reports whether the record is zstd-compressed, either by
// request or because the file name ends in .zst.
func (o *OutputConfig) ShouldCompress() bool {
	return o.Compress || strings.HasSuffix(o.RecordFile, ".zst")
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Compress && o.RecordFile == "" {
		return fmt.Errorf("compression requested without a record file: %w", errors.ErrInvalidConfig)
	}
	return nil
}
