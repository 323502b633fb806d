package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// MustBoard builds a board from the placement field of a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, _, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// AssertBoardsEqual reports a diff of the complete board state: grid,
// piece locations, capture stacks and pawn-moved markers.
func AssertBoardsEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want.SaveState(), got.SaveState()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: board mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("board mismatch (-want +got):\n%s", diff)
		}
	}
}
