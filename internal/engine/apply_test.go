package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		colour  chess.Colour
		text    string
		wantErr bool
	}{
		{"pawn push", chess.White, "e2e4", false},
		{"knight", chess.Black, "g8f6", false},
		{"too long", chess.White, "e2e4q", true},
		{"bad square", chess.White, "e9e4", true},
		{"not a candidate", chess.White, "e2e5", true},
		{"wrong side", chess.White, "e7e5", true},
		{"empty square", chess.White, "e4e5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMove(NewInitialBoard(), tt.colour, tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrIllegalMove) {
					t.Errorf("ParseMove(%q) error = %v; want ErrIllegalMove", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.text, err)
			}
			if m.String() != tt.text {
				t.Errorf("ParseMove(%q) = %s", tt.text, m)
			}
		})
	}
}

func TestApplyRealMove(t *testing.T) {
	board := MustBoardFromFEN("4k3/8/3q4/8/8/8/3R4/4K3 w")
	m, err := ParseMove(board, chess.White, "d2d6")
	if err != nil {
		t.Fatal(err)
	}

	res, err := ApplyRealMove(board, chess.White, m)
	if err != nil {
		t.Fatalf("ApplyRealMove() error = %v", err)
	}
	if !res.HasCaptured || res.Captured.Kind != chess.Queen || res.KingCaptured {
		t.Errorf("result = %+v; want queen captured", res)
	}
	if p, _ := board.PieceAt(chess.Sq(3, 5)); p.Kind != chess.Rook {
		t.Errorf("d6 holds %v; want the rook", p)
	}
	if got := len(board.Captured(chess.White)); got != 1 {
		t.Errorf("pieces captured by white = %d; want 1", got)
	}

	board.Unmake(res.Move, res.Undo)
	if p, _ := board.PieceAt(chess.Sq(3, 5)); p.Kind != chess.Queen {
		t.Errorf("d6 holds %v after Unmake; want the queen", p)
	}
}

func TestApplyRealMove_KingCapture(t *testing.T) {
	board := MustBoardFromFEN("4k3/8/8/8/8/8/4r3/4K3 b")
	m, err := ParseMove(board, chess.Black, "e2e1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := ApplyRealMove(board, chess.Black, m)
	if err != nil {
		t.Fatal(err)
	}
	if !res.KingCaptured {
		t.Error("KingCaptured = false after taking the king")
	}
	if board.FindKing(chess.White).OnBoard() {
		t.Error("white king still on the board")
	}
}

func TestApplyRealMove_Rejects(t *testing.T) {
	board := NewInitialBoard()
	before := board.SaveState()

	tests := []struct {
		name   string
		colour chess.Colour
		move   chess.Move
	}{
		{"off-rules destination", chess.White, chess.NewMove(chess.Sq(4, 1), chess.Sq(4, 4), board.At(chess.Sq(4, 1)))},
		{"opponent's piece", chess.Black, chess.NewMove(chess.Sq(4, 1), chess.Sq(4, 3), board.At(chess.Sq(4, 1)))},
		{"piece mismatch", chess.White, chess.NewMove(chess.Sq(4, 1), chess.Sq(4, 3), board.At(chess.Sq(3, 1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyRealMove(board, tt.colour, tt.move)
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Errorf("ApplyRealMove() error = %v; want ErrIllegalMove", err)
			}
			if !statesEqual(before, board.SaveState()) {
				t.Error("rejected move changed the board")
			}
		})
	}
}

func TestApplyRealMove_MarksPawnMoved(t *testing.T) {
	board := NewInitialBoard()
	m, err := ParseMove(board, chess.White, "e2e3")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyRealMove(board, chess.White, m); err != nil {
		t.Fatal(err)
	}
	if !board.HasPawnMoved(m.Piece) {
		t.Error("pawn not marked as moved")
	}
	if _, ok := FindMove(board, chess.White, chess.Sq(4, 2), chess.Sq(4, 4)); ok {
		t.Error("moved pawn may still push two squares")
	}
}
