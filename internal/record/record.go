// Package record mirrors the real moves of a game onto a rules-complete
// board from github.com/notnil/chess, so that the game can be exported as
// PGN and FEN and judged by the full rules of chess.
//
// The engine's own rules are simpler (no castling, en passant, promotion or
// legality filtering). When a move has no counterpart in the full rules the
// record stops mirroring and reports ErrRecordDiverged; the engine-side move
// list is kept regardless.
package record

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// Record is the move history of one game.
type Record struct {
	startFEN string
	tags     [][2]string

	game  *notnil.Game
	moves []chess.Move

	// divergedAt is the ply of the first unmirrored move, or -1.
	divergedAt int
	result     string
	reason     string
}

// New starts a record from a FEN position. White and Black name the
// players in the PGN tags.
func New(startFEN, white, black string) (*Record, error) {
	r := &Record{
		startFEN:   startFEN,
		divergedAt: -1,
		tags: [][2]string{
			{"Event", "chess-ai-go"},
			{"White", white},
			{"Black", black},
		},
	}
	if err := r.reset(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Record) reset() error {
	opt, err := notnil.FEN(r.startFEN)
	if err != nil {
		return fmt.Errorf("record start %q: %w: %v", r.startFEN, errors.ErrInvalidFEN, err)
	}
	r.game = notnil.NewGame(opt)
	for _, tag := range r.tags {
		r.game.AddTagPair(tag[0], tag[1])
	}
	return nil
}

// Push appends a real move. It returns ErrRecordDiverged, wrapped in a
// MoveError, the first time a move cannot be mirrored; later moves are
// only kept in the engine-side list.
func (r *Record) Push(m chess.Move, side chess.Colour) error {
	r.moves = append(r.moves, m)
	if r.divergedAt >= 0 {
		return nil
	}
	if err := r.mirror(m); err != nil {
		r.divergedAt = len(r.moves) - 1
		return &errors.MoveError{
			Err:      fmt.Errorf("%w: %v", errors.ErrRecordDiverged, err),
			Ply:      len(r.moves),
			Side:     side.String(),
			MoveText: m.String(),
		}
	}
	return nil
}

// mirror plays m on the rules-complete board. Promotions have no engine
// counterpart and count as divergence.
func (r *Record) mirror(m chess.Move) error {
	if r.game.Outcome() != notnil.NoOutcome {
		return fmt.Errorf("game already decided by %s", r.game.Method())
	}
	from, to := toSquare(m.From), toSquare(m.To)
	for _, vm := range r.game.ValidMoves() {
		if vm.S1() == from && vm.S2() == to && vm.Promo() == notnil.NoPieceType {
			return r.game.Move(vm)
		}
	}
	return fmt.Errorf("%s is not legal under full rules", m)
}

func toSquare(sq chess.Square) notnil.Square {
	return notnil.Square(sq.Rank*chess.BoardSize + sq.Col)
}

// Pop removes the last move, replaying the rest on a fresh board.
func (r *Record) Pop() error {
	if len(r.moves) == 0 {
		return errors.ErrNothingToUndo
	}
	moves := r.moves[:len(r.moves)-1]
	r.moves = nil
	r.divergedAt = -1
	r.result, r.reason = "", ""
	if err := r.reset(); err != nil {
		return err
	}
	for _, m := range moves {
		r.moves = append(r.moves, m)
		if r.divergedAt < 0 && r.mirror(m) != nil {
			r.divergedAt = len(r.moves) - 1
		}
	}
	return nil
}

// SetResult records a result decided by the engine's rules, for example a
// king capture. result is a PGN result such as "0-1".
func (r *Record) SetResult(result, reason string) {
	r.result, r.reason = result, reason
}

// Moves returns the engine-side move list.
func (r *Record) Moves() []chess.Move {
	return append([]chess.Move(nil), r.moves...)
}

// Len is the number of plies recorded.
func (r *Record) Len() int {
	return len(r.moves)
}

// Diverged reports whether mirroring stopped, and at which ply index.
func (r *Record) Diverged() (int, bool) {
	return r.divergedAt, r.divergedAt >= 0
}

// FEN returns the position of the mirrored game.
func (r *Record) FEN() string {
	return r.game.Position().String()
}

// Outcome returns the result under the full rules and how it was reached.
func (r *Record) Outcome() (notnil.Outcome, notnil.Method) {
	return r.game.Outcome(), r.game.Method()
}

// PGN renders the mirrored game. Engine results, divergence and the
// engine-side moves that could not be mirrored are added as tags.
func (r *Record) PGN() string {
	g := r.game.Clone()
	if r.result != "" {
		g.AddTagPair("EngineResult", r.result)
	}
	if r.reason != "" {
		g.AddTagPair("Termination", r.reason)
	}
	if r.divergedAt >= 0 {
		g.AddTagPair("Diverged", fmt.Sprintf("ply %d", r.divergedAt+1))
		g.AddTagPair("EngineMoves", r.coordinateMoves(r.divergedAt))
	}
	return g.String()
}

// coordinateMoves joins the moves from ply index from onwards.
func (r *Record) coordinateMoves(from int) string {
	parts := make([]string, 0, len(r.moves)-from)
	for _, m := range r.moves[from:] {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}
