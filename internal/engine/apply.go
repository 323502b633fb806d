package engine

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// RealMoveResult describes the outcome of a move played in the actual game.
type RealMoveResult struct {
	Move chess.Move
	Undo chess.Undo

	// Captured is the piece taken by the move, if any.
	Captured    chess.Piece
	HasCaptured bool

	// KingCaptured is set when the move took a king, which ends the game.
	KingCaptured bool
}

// ApplyRealMove validates that move is one of colour's candidate moves and
// plays it on the board. Unlike the simulated moves of the search, the
// caller is told whether a king was taken so it can end the game.
func ApplyRealMove(board *chess.Board, colour chess.Colour, move chess.Move) (RealMoveResult, error) {
	found, ok := FindMove(board, colour, move.From, move.To)
	if !ok || found.Piece != move.Piece {
		return RealMoveResult{}, fmt.Errorf("%s %v: %w", colour, move, errors.ErrIllegalMove)
	}

	res := RealMoveResult{Move: found}
	if target, occupied := board.PieceAt(found.To); occupied {
		res.Captured = target
		res.HasCaptured = true
		res.KingCaptured = target.Kind == chess.King
	}
	res.Undo = board.Make(found)
	return res, nil
}

// ParseMove parses coordinate notation ("e2e4") into one of colour's
// candidate moves.
func ParseMove(board *chess.Board, colour chess.Colour, text string) (chess.Move, error) {
	if len(text) != 4 {
		return chess.Move{}, fmt.Errorf("move %q: want four characters like e2e4: %w", text, errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q: %v", text, err)
	}
	to, err := chess.ParseSquare(text[2:])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q: %v", text, err)
	}
	m, ok := FindMove(board, colour, from, to)
	if !ok {
		return chess.Move{}, fmt.Errorf("move %q for %s: %w", text, colour, errors.ErrIllegalMove)
	}
	return m, nil
}
