// Package errors provides sentinel errors and error types for the chess AI.
// It defines the failure conditions of the outer surfaces (position setup,
// configuration and the real game) and a structured error type that keeps
// move context while allowing inspection with errors.Is() and errors.As().
// The search itself never fails.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not among the side's candidates.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a move by the side that is not to move.
	ErrNotYourTurn = errors.New("not this side's turn")

	// ErrSearchInProgress indicates the board is owned by a running search.
	ErrSearchInProgress = errors.New("search in progress")

	// ErrNoMove indicates the search found no candidate move.
	ErrNoMove = errors.New("no move available")

	// ErrNothingToUndo indicates a take-back with no real moves played.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrRecordDiverged indicates the rules-complete game record could not
	// follow a move played by the engine's simplified rules.
	ErrRecordDiverged = errors.New("game record diverged")

	// ErrEngineUnavailable indicates the external analysis engine failed.
	ErrEngineUnavailable = errors.New("analysis engine unavailable")
)

// MoveError wraps errors with real-game context: the ply, the side and
// the move text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply of the game (0 if not applicable)
	Side     string // Side that attempted the move (if known)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "move error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
