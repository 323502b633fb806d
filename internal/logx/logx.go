// Package logx builds the zerolog loggers used by the game layer and CLI.
package logx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// NewLogger returns a console logger writing to w at the given level.
// An empty level means info.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	zerolog.CallerMarshalFunc = shortCaller
	return zerolog.New(output).Level(lvl).With().Timestamp().Caller().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", level, errors.ErrInvalidConfig)
	}
	return lvl, nil
}

// shortCaller trims the path to the file name and pads for alignment.
func shortCaller(_ uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%-20s", fmt.Sprintf("%s:%d", short, line))
}
