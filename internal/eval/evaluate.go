// Package eval scores board states with material values and piece-square
// tables. Scores are from Black's perspective: positive favours Black.
package eval

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Func is the signature of a static evaluation.
type Func func(board *chess.Board) float64

// MaterialValue returns the material worth of a piece kind.
func MaterialValue(kind chess.Kind) float64 {
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		return 0
	}
	return materialValues[kind]
}

// PositionValue returns the piece-square bonus for a piece of the given
// colour and kind standing on sq.
func PositionValue(colour chess.Colour, kind chess.Kind, sq chess.Square) float64 {
	if kind <= chess.NoKind || kind >= chess.NumKinds || !sq.OnBoard() {
		return 0
	}
	return pieceSquare[colour][kind][sq.Rank][sq.Col]
}

// PieceValue is material plus placement for one piece on sq, unsigned.
func PieceValue(p chess.Piece, sq chess.Square) float64 {
	return MaterialValue(p.Kind) + PositionValue(p.Colour, p.Kind, sq)
}

// Evaluate sums material and placement over every occupied square, adding
// Black's pieces and subtracting White's. It does not modify the board.
func Evaluate(board *chess.Board) float64 {
	var score float64
	for col := 0; col < chess.BoardSize; col++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(col, rank)
			p, ok := board.PieceAt(sq)
			if !ok {
				continue
			}
			if p.Colour == chess.Black {
				score += PieceValue(p, sq)
			} else {
				score -= PieceValue(p, sq)
			}
		}
	}
	return score
}
