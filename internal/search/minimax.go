package search

import "github.com/lgbarn/chess-ai-go/internal/chess"

// MiniMax searches every move to the given depth without pruning or
// ordering. It returns the same value as Search and is meant as a
// reference for tests and benchmarks.
func (s *Searcher) MiniMax(depth int, maximizing bool) Result {
	s.stats = Stats{}
	value, move, ok := s.miniMax(depth, maximizing)
	return Result{Value: value, Move: move, HasMove: ok, Stats: s.stats}
}

func (s *Searcher) miniMax(depth int, maximizing bool) (float64, chess.Move, bool) {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return s.evaluate(s.board), chess.Move{}, false
	}

	best := PosInf
	if maximizing {
		best = NegInf
	}
	var bestMove chess.Move
	found := false

	for _, m := range s.gen.GenerateMoves(s.board, Side(maximizing)) {
		u := s.board.Make(m)
		value, _, _ := s.miniMax(depth-1, !maximizing)
		s.board.Unmake(m, u)

		if !found || (maximizing && value > best) || (!maximizing && value < best) {
			best, bestMove, found = value, m, true
		}
	}
	return best, bestMove, found
}
