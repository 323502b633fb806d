// Package search implements minimax with alpha-beta pruning over a single
// shared board. Moves are simulated with Board.Make and reverted with
// Board.Unmake; every exit path leaves the board as it was found.
//
// Black is the maximizing side and White the minimizing side, matching the
// sign of eval.Evaluate.
package search

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
)

// Bounds used as minus and plus infinity. They exceed any reachable
// evaluation, kings included.
const (
	NegInf = -1000000.0
	PosInf = 1000000.0
)

// DefaultOrderingPrefix is how many moves the orderer ranks by static
// evaluation before falling back to generation order.
const DefaultOrderingPrefix = 6

// Generator produces the candidate moves for a side. No ordering is
// required of the result.
type Generator interface {
	GenerateMoves(board *chess.Board, colour chess.Colour) []chess.Move
}

// Searcher runs searches over one board. It is not safe for concurrent
// use, and nothing else may mutate the board while a search is running.
type Searcher struct {
	board    *chess.Board
	gen      Generator
	evaluate eval.Func

	ordering       bool
	orderingPrefix int
	mirrorBias     bool

	stats Stats
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithGenerator replaces the pseudo-legal generator.
func WithGenerator(g Generator) Option {
	return func(s *Searcher) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithEvaluator replaces eval.Evaluate.
func WithEvaluator(f eval.Func) Option {
	return func(s *Searcher) {
		if f != nil {
			s.evaluate = f
		}
	}
}

// WithOrdering enables or disables move ordering. Disabled, moves are
// searched in generation order.
func WithOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}

// WithOrderingPrefix sets how many moves are ranked by static evaluation.
func WithOrderingPrefix(n int) Option {
	return func(s *Searcher) {
		if n >= 0 {
			s.orderingPrefix = n
		}
	}
}

// WithMirrorOrderingBias makes the orderer rank highest score first for
// both sides. By default the minimizing side ranks lowest score first.
func WithMirrorOrderingBias(enabled bool) Option {
	return func(s *Searcher) {
		s.mirrorBias = enabled
	}
}

// New creates a Searcher bound to board. Defaults: pseudo-legal
// generation, eval.Evaluate, ordering on with DefaultOrderingPrefix.
func New(board *chess.Board, opts ...Option) *Searcher {
	s := &Searcher{
		board:          board,
		gen:            engine.PseudoLegal{},
		evaluate:       eval.Evaluate,
		ordering:       true,
		orderingPrefix: DefaultOrderingPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the board the searcher operates on.
func (s *Searcher) Board() *chess.Board {
	return s.board
}

// Result is the outcome of a top-level search.
type Result struct {
	Value float64
	Move  chess.Move
	// HasMove is false at depth 0 and when the side to move has no
	// candidates. Move must not be used in that case.
	HasMove bool
	Stats   Stats
}

// Side returns the colour searched for a maximizing flag.
func Side(maximizing bool) chess.Colour {
	if maximizing {
		return chess.Black
	}
	return chess.White
}

// Maximizing reports whether colour is the maximizing side.
func Maximizing(colour chess.Colour) bool {
	return colour == chess.Black
}

// Search runs alpha-beta from the full window and returns the value and
// best move for the side implied by maximizing. Statistics are reset for
// each call.
func (s *Searcher) Search(depth int, maximizing bool) Result {
	s.stats = Stats{}
	value, move, ok := s.alphaBeta(depth, maximizing, NegInf, PosInf)
	return Result{Value: value, Move: move, HasMove: ok, Stats: s.stats}
}

// AlphaBeta searches with an explicit window. Statistics accumulate
// across calls until the next Search or MiniMax.
func (s *Searcher) AlphaBeta(depth int, maximizing bool, alpha, beta float64) (float64, chess.Move, bool) {
	return s.alphaBeta(depth, maximizing, alpha, beta)
}

func (s *Searcher) alphaBeta(depth int, maximizing bool, alpha, beta float64) (float64, chess.Move, bool) {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return s.evaluate(s.board), chess.Move{}, false
	}

	moves := s.gen.GenerateMoves(s.board, Side(maximizing))
	if s.ordering {
		moves = s.Order(moves, maximizing)
	}

	best := PosInf
	if maximizing {
		best = NegInf
	}
	var bestMove chess.Move
	found := false

	for _, m := range moves {
		u := s.board.Make(m)
		value, _, _ := s.alphaBeta(depth-1, !maximizing, alpha, beta)
		s.board.Unmake(m, u)

		// Strict comparison keeps the first of equally good moves. The
		// first move is always taken so that a sentinel value still comes
		// with a move.
		if maximizing {
			if value > best || !found {
				best, bestMove, found = value, m, true
			}
			alpha = max(alpha, value)
		} else {
			if value < best || !found {
				best, bestMove, found = value, m, true
			}
			beta = min(beta, value)
		}
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best, bestMove, found
}
