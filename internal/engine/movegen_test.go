package engine

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestGenerateMoves_InitialPosition(t *testing.T) {
	tests := []struct {
		colour chess.Colour
		first  []string
	}{
		{chess.White, []string{"a2a3", "a2a4", "b1a3", "b1c3", "b2b3", "b2b4"}},
		{chess.Black, []string{"a7a6", "a7a5", "b7b6", "b7b5", "b8c6", "b8a6"}},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			moves := moveStrings(GenerateMoves(NewInitialBoard(), tt.colour))
			if len(moves) != 20 {
				t.Fatalf("len(moves) = %d; want 20", len(moves))
			}
			for i, want := range tt.first {
				if moves[i] != want {
					t.Errorf("moves[%d] = %s; want %s", i, moves[i], want)
				}
			}
		})
	}
}

func TestDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want int
	}{
		{"rook stops before own king", "4k3/8/8/8/8/8/8/R3K3 w", "a1", 10},
		{"rook includes blocking enemy", "4k3/8/8/8/8/8/8/R2nK3 w", "a1", 10},
		{"queen in the centre", "4k3/8/8/8/3Q4/8/8/4K3 w", "d4", 27},
		{"knight in the corner", "4k3/8/8/8/8/8/8/N3K3 w", "a1", 2},
		{"king on the edge", "4k3/8/8/8/8/8/8/4K3 w", "e1", 5},
		{"bishop blocked by own pawns", "4k3/8/8/8/8/8/3P1P2/4BK2 w", "e1", 0},
		{"unmoved pawn pushes twice", "4k3/8/8/8/8/8/4P3/4K3 w", "e2", 2},
		{"moved pawn pushes once", "4k3/8/8/8/4P3/8/8/4K3 w", "e4", 1},
		{"blocked pawn", "4k3/8/8/8/8/4n3/4P3/4K3 w", "e2", 0},
		{"pawn captures diagonally", "4k3/8/8/8/8/3n1n2/4P3/4K3 w", "e2", 4},
		{"double push blocked on second square", "4k3/8/8/8/4n3/8/4P3/4K3 w", "e2", 1},
		{"black pawn moves down", "4k3/4p3/8/8/8/8/8/4K3 b", "e7", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			sq, err := chess.ParseSquare(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			got := Destinations(board, board.At(sq))
			if len(got) != tt.want {
				t.Errorf("Destinations(%s) = %v; want %d squares", tt.from, got, tt.want)
			}
		})
	}
}

func TestDestinations_CapturedPiece(t *testing.T) {
	board := MustBoardFromFEN("4k3/8/8/8/8/8/r7/4K3 w")
	rook := board.At(chess.Sq(0, 1))
	m, ok := FindMove(board, chess.White, chess.Sq(4, 0), chess.Sq(3, 1))
	if !ok {
		t.Fatal("e1d2 not found")
	}
	board.Make(m)
	rm, ok := FindMove(board, chess.Black, chess.Sq(0, 1), chess.Sq(3, 1))
	if !ok {
		t.Fatal("a2d2 not found")
	}
	board.Make(rm)

	king := board.Captured(chess.Black)[0]
	if got := Destinations(board, king); len(got) != 0 {
		t.Errorf("captured king has destinations %v", got)
	}
	if got := Destinations(board, rook); len(got) == 0 {
		t.Error("rook has no destinations after capture")
	}
}

func TestGenerateMoves_NoPieces(t *testing.T) {
	board := MustBoardFromFEN("4k3/8/8/8/8/8/8/8 w")
	if moves := GenerateMoves(board, chess.White); len(moves) != 0 {
		t.Errorf("GenerateMoves() = %v; want none", moves)
	}
}

func TestGenerateMoves_Deterministic(t *testing.T) {
	board := MustBoardFromFEN("r3k2r/ppp2ppp/2n5/3q4/3Q4/2N5/PPP2PPP/R3K2R w")
	a := moveStrings(GenerateMoves(board, chess.White))
	b := moveStrings(PseudoLegal{}.GenerateMoves(board, chess.White))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("move %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestFindMove(t *testing.T) {
	board := NewInitialBoard()
	if _, ok := FindMove(board, chess.White, chess.Sq(4, 1), chess.Sq(4, 3)); !ok {
		t.Error("e2e4 not found")
	}
	if _, ok := FindMove(board, chess.Black, chess.Sq(4, 1), chess.Sq(4, 3)); ok {
		t.Error("black moved a white pawn")
	}
	if _, ok := FindMove(board, chess.White, chess.Sq(4, 3), chess.Sq(4, 4)); ok {
		t.Error("move found from an empty square")
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	board := NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateMoves(board, chess.White)
	}
}
