// Package chess provides the core chess value types: sides, piece kinds,
// squares, piece identities, moves and the mutable board state shared by
// the real game and the search.
package chess

import "fmt"

// Colour represents the side a piece belongs to.
type Colour int

const (
	Black Colour = iota
	White
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" into a Colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "White", "w":
		return White, nil
	case "black", "Black", "b":
		return Black, nil
	}
	return Black, fmt.Errorf("unknown side %q", s)
}

// Kind is the type of a chess piece. It never changes for the lifetime of
// a piece; promotion is not modelled.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'

	// MaxPieces bounds the identity table of a board.
	MaxPieces = 64
)

// Square is a (column, rank) coordinate pair. Both components are in
// [0, BoardSize) for squares on the board.
type Square struct {
	Col  int
	Rank int
}

// OffBoard is the location recorded for captured pieces.
var OffBoard = Square{Col: -1, Rank: -1}

// Sq is shorthand for Square{Col: col, Rank: rank}.
func Sq(col, rank int) Square {
	return Square{Col: col, Rank: rank}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square dc columns and dr ranks away.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Rank: s.Rank + dr}
}

// String returns algebraic coordinates such as "e4", or "-" when off board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + s.Rank)})
}

// ParseSquare converts algebraic coordinates ("a1".."h8") into a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return OffBoard, fmt.Errorf("square %q: want two characters", text)
	}
	sq := Square{Col: int(text[0]) - ColBase, Rank: int(text[1]) - RankBase}
	if !sq.OnBoard() {
		return OffBoard, fmt.Errorf("square %q is off the board", text)
	}
	return sq, nil
}

// PieceID is a stable handle for one piece instance on a board. Handles
// are assigned at setup and never reused, so a captured piece can always
// be restored by handle.
type PieceID int8

// NoPiece marks an empty square or an absent piece.
const NoPiece PieceID = -1

// Piece is an identity plus immutable kind and owner.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}
