package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// HasLegalMoves returns true if colour has a candidate move that does not
// leave its own king attacked. Each candidate is tried with Make/Unmake, so
// the board is unchanged on return.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, m := range GenerateMoves(board, colour) {
		u := board.Make(m)
		safe := !IsInCheck(board, colour)
		board.Unmake(m, u)
		if safe {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is to move, in check, and has no move
// that escapes.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is to move, not in check, and every
// move would leave its king attacked.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
