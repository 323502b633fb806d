package search

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Order returns a permutation of moves with up to OrderingPrefix of the
// best-scoring moves first, followed by the rest in their original order.
// Each move is scored by making it, evaluating the board and unmaking it.
//
// The maximizing side takes the highest scores first. The minimizing side
// takes the lowest first, unless the mirror bias option is set. Ties keep
// the earlier move.
func (s *Searcher) Order(moves []chess.Move, maximizing bool) []chess.Move {
	k := min(s.orderingPrefix, len(moves))
	if k == 0 {
		return moves
	}

	scores := make([]float64, len(moves))
	for i, m := range moves {
		u := s.board.Make(m)
		scores[i] = s.evaluate(s.board)
		s.board.Unmake(m, u)
		s.stats.OrderingEvals++
	}

	highFirst := maximizing || s.mirrorBias
	taken := make([]bool, len(moves))
	ordered := make([]chess.Move, 0, len(moves))

	for n := 0; n < k; n++ {
		pick := -1
		for i := range moves {
			if taken[i] {
				continue
			}
			if pick < 0 || better(scores[i], scores[pick], highFirst) {
				pick = i
			}
		}
		taken[pick] = true
		ordered = append(ordered, moves[pick])
	}
	for i, m := range moves {
		if !taken[i] {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func better(a, b float64, highFirst bool) bool {
	if highFirst {
		return a > b
	}
	return a < b
}
