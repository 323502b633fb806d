package chess

// Move is an immutable candidate move: the moving piece and its source and
// destination squares.
type Move struct {
	From  Square
	To    Square
	Piece PieceID
}

// NewMove creates a move of piece from one square to another.
func NewMove(from, to Square, piece PieceID) Move {
	return Move{From: from, To: to, Piece: piece}
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// SameSquares reports whether two moves share source and destination.
func (m Move) SameSquares(o Move) bool {
	return m.From == o.From && m.To == o.To
}
