package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side
// whose king has been captured is not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if !king.OnBoard() {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour has a pseudo-legal
// move onto sq. For pawns only diagonal steps onto an occupied square
// count, matching the move generator.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	var dests []chess.Square
	for id := chess.PieceID(0); int(id) < board.NumPieces(); id++ {
		p := board.Piece(id)
		if p.Colour != byColour || !board.Location(id).OnBoard() {
			continue
		}
		dests = appendDestinations(dests[:0], board, id)
		for _, d := range dests {
			if d == sq {
				return true
			}
		}
	}
	return false
}

// KingTargeted reports whether any destination generated for colour holds
// a king. It is a UI prompt only: any attack on the king counts, whether
// or not the attacked side can escape. Use IsCheckmate for the real test.
func KingTargeted(board *chess.Board, colour chess.Colour) bool {
	for _, m := range GenerateMoves(board, colour) {
		if p, ok := board.PieceAt(m.To); ok && p.Kind == chess.King {
			return true
		}
	}
	return false
}
