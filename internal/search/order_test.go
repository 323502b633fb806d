package search

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

// staticScores evaluates each move the way the orderer does.
func staticScores(board *chess.Board, moves []chess.Move) map[chess.Move]float64 {
	scores := make(map[chess.Move]float64, len(moves))
	for _, m := range moves {
		u := board.Make(m)
		scores[m] = eval.Evaluate(board)
		board.Unmake(m, u)
	}
	return scores
}

func TestOrder_PrefixThenOriginalOrder(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		maximizing bool
		mirror     bool
		prefix     int
	}{
		{"black queen trade", queenTradeFEN, true, false, 6},
		{"white queen trade", queenTradeFEN, false, false, 6},
		{"white mirrored", queenTradeFEN, false, true, 6},
		{"white hanging queen", hangingQueenFEN, false, false, 6},
		{"initial black", engine.InitialFEN, true, false, 6},
		{"prefix larger than moves", hangingQueenFEN, true, false, 100},
		{"prefix of two", exposedQueenFEN, false, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.fen)
			before := board.Copy()
			moves := engine.GenerateMoves(board, Side(tt.maximizing))
			scores := staticScores(board, moves)

			s := New(board, WithOrderingPrefix(tt.prefix), WithMirrorOrderingBias(tt.mirror))
			got := s.Order(moves, tt.maximizing)

			testutil.AssertBoardsEqual(t, board, before)
			if len(got) != len(moves) {
				t.Fatalf("len(Order()) = %d; want %d", len(got), len(moves))
			}

			k := min(tt.prefix, len(moves))
			highFirst := tt.maximizing || tt.mirror
			prefix := got[:k]
			for i := 1; i < k; i++ {
				a, b := scores[prefix[i-1]], scores[prefix[i]]
				if (highFirst && a < b) || (!highFirst && a > b) {
					t.Errorf("prefix[%d]=%s (%v) ranked before prefix[%d]=%s (%v)", i-1, prefix[i-1], a, i, prefix[i], b)
				}
			}

			inPrefix := make(map[chess.Move]bool, k)
			for _, m := range prefix {
				inPrefix[m] = true
			}
			for _, m := range got[k:] {
				sc, last := scores[m], scores[prefix[k-1]]
				if (highFirst && sc > last) || (!highFirst && sc < last) {
					t.Errorf("tail move %s (%v) outranks prefix move %s (%v)", m, sc, prefix[k-1], last)
				}
			}

			var wantTail []chess.Move
			for _, m := range moves {
				if !inPrefix[m] {
					wantTail = append(wantTail, m)
				}
			}
			testutil.AssertEqual(t, append([]chess.Move(nil), got[k:]...), []chess.Move(wantTail), "tail order")
			if s.stats.OrderingEvals != len(moves) {
				t.Errorf("OrderingEvals = %d; want %d", s.stats.OrderingEvals, len(moves))
			}
		})
	}
}

func TestOrder_BestCaptureFirst(t *testing.T) {
	board := testutil.MustBoard(t, hangingQueenFEN)
	moves := engine.GenerateMoves(board, chess.White)

	got := New(board).Order(moves, false)
	if got[0].String() != "d2d6" {
		t.Errorf("first ordered move = %s; want d2d6", got[0])
	}

	mirrored := New(board, WithMirrorOrderingBias(true)).Order(moves, false)
	if mirrored[0].String() == "d2d6" {
		t.Error("mirrored ordering should not put the queen capture first for white")
	}
}

func TestOrder_TiesKeepFirstOccurrence(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.GenerateMoves(board, chess.Black)
	flat := func(*chess.Board) float64 { return 0 }

	got := New(board, WithEvaluator(flat)).Order(moves, true)
	testutil.AssertEqual(t, got, moves)
}

func TestOrder_ZeroPrefixLeavesMovesAlone(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.GenerateMoves(board, chess.White)
	s := New(board, WithOrderingPrefix(0))

	testutil.AssertEqual(t, s.Order(moves, false), moves)
	if s.stats.OrderingEvals != 0 {
		t.Errorf("OrderingEvals = %d; want 0", s.stats.OrderingEvals)
	}
}

func TestOrder_Empty(t *testing.T) {
	s := New(engine.NewInitialBoard())
	if got := s.Order(nil, true); len(got) != 0 {
		t.Errorf("Order(nil) = %v; want empty", got)
	}
}
