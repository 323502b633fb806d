package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN, ErrIllegalMove, ErrInvalidConfig, ErrGameOver,
		ErrNotYourTurn, ErrSearchInProgress, ErrNoMove, ErrNothingToUndo,
		ErrRecordDiverged, ErrEngineUnavailable,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrGameOver) {
		t.Error("ErrIllegalMove matches ErrGameOver")
	}
	if errors.Is(ErrSearchInProgress, ErrNotYourTurn) {
		t.Error("ErrSearchInProgress matches ErrNotYourTurn")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, Ply: 12, Side: "White", MoveText: "e2e5"},
			contains: []string{"ply 12", "White", `"e2e5"`, "illegal move"},
		},
		{
			name: "error only",
			err:  &MoveError{Err: ErrGameOver},
			want: "game is over",
		},
		{
			name: "context only",
			err:  &MoveError{Ply: 3},
			want: "ply 3",
		},
		{
			name: "empty",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	err := fmt.Errorf("play: %w", &MoveError{Err: ErrNotYourTurn, Ply: 2})

	if !errors.Is(err, ErrNotYourTurn) {
		t.Error("errors.Is(err, ErrNotYourTurn) = false, want true")
	}

	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatal("errors.As(err, *MoveError) = false, want true")
	}
	if me.Ply != 2 {
		t.Errorf("me.Ply = %d, want 2", me.Ply)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "ignored %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	err := Wrapf(ErrInvalidFEN, "loading %s", "start")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("Wrapf lost the sentinel")
	}
	if got, want := err.Error(), "loading start: invalid FEN string"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
}
