package chess

// Board is the mutable game state: an 8x8 grid of piece handles, the
// identity table of every piece created at setup, a per-side stack of
// captured pieces and a per-side set of pawns that have made their first
// move.
//
// Pieces are only created by AddPiece/SetupInitialPosition. During play and
// search the board is changed exclusively through Make and Unmake, which
// keep the grid, the reverse location table and the capture stacks
// consistent with each other.
type Board struct {
	// squares[col][rank] holds the handle of the occupant or NoPiece.
	squares [BoardSize][BoardSize]PieceID

	pieces   []Piece
	location []Square

	// captured[c] is the stack of pieces captured by side c.
	captured [NumColours][]PieceID

	// pawnsMoved[c] has bit id set once pawn id of side c has moved.
	pawnsMoved [NumColours]uint64
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.clearSquares()
	return b
}

func (b *Board) clearSquares() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.squares[col][rank] = NoPiece
		}
	}
}

// SetupInitialPosition resets the board to the standard starting position.
// The 32 pieces are created in a fixed order: White back rank, White pawns,
// Black back rank, Black pawns, each from the a-file to the h-file.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	b.clearSquares()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.AddPiece(White, kind, Sq(col, 0))
	}
	for col := 0; col < BoardSize; col++ {
		b.AddPiece(White, Pawn, Sq(col, 1))
	}
	for col, kind := range backRank {
		b.AddPiece(Black, kind, Sq(col, 7))
	}
	for col := 0; col < BoardSize; col++ {
		b.AddPiece(Black, Pawn, Sq(col, 6))
	}
}

// AddPiece creates a new piece on an empty square and returns its handle.
// It returns NoPiece if the square is off the board or occupied, or if the
// identity table is full.
func (b *Board) AddPiece(colour Colour, kind Kind, sq Square) PieceID {
	if !sq.OnBoard() || b.squares[sq.Col][sq.Rank] != NoPiece || len(b.pieces) >= MaxPieces {
		return NoPiece
	}
	if kind <= NoKind || kind >= NumKinds {
		return NoPiece
	}
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{ID: id, Kind: kind, Colour: colour})
	b.location = append(b.location, sq)
	b.squares[sq.Col][sq.Rank] = id
	return id
}

// At returns the handle of the piece on sq, or NoPiece if the square is
// empty or off the board.
func (b *Board) At(sq Square) PieceID {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.squares[sq.Col][sq.Rank]
}

// Piece returns the identity of the piece with the given handle.
func (b *Board) Piece(id PieceID) Piece {
	return b.pieces[id]
}

// PieceAt returns the piece on sq and whether the square was occupied.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	id := b.At(sq)
	if id == NoPiece {
		return Piece{ID: NoPiece}, false
	}
	return b.pieces[id], true
}

// Location returns where the piece currently stands, or OffBoard if it has
// been captured.
func (b *Board) Location(id PieceID) Square {
	return b.location[id]
}

// NumPieces returns the number of piece identities created on this board,
// captured ones included.
func (b *Board) NumPieces() int {
	return len(b.pieces)
}

// Captured returns the pieces captured by colour, oldest first. The slice
// is a copy.
func (b *Board) Captured(colour Colour) []PieceID {
	return append([]PieceID(nil), b.captured[colour]...)
}

// HasPawnMoved reports whether the pawn with the given handle has made its
// first move.
func (b *Board) HasPawnMoved(id PieceID) bool {
	p := b.pieces[id]
	return b.pawnsMoved[p.Colour]&(1<<uint(id)) != 0
}

// MarkPawnMoved records that a pawn has already left its starting square.
// It is used at setup for pawns placed off their home rank.
func (b *Board) MarkPawnMoved(id PieceID) {
	p := b.pieces[id]
	if p.Kind == Pawn {
		b.pawnsMoved[p.Colour] |= 1 << uint(id)
	}
}

// FindKing returns the square of colour's king, or OffBoard if it is not on
// the board.
func (b *Board) FindKing(colour Colour) Square {
	for _, p := range b.pieces {
		if p.Kind == King && p.Colour == colour {
			if loc := b.location[p.ID]; loc.OnBoard() {
				return loc
			}
		}
	}
	return OffBoard
}

// Copy creates a deep copy of the board. Handles are preserved, so moves
// generated on the original can be made on the copy.
func (b *Board) Copy() *Board {
	nb := &Board{
		squares:    b.squares,
		pieces:     append([]Piece(nil), b.pieces...),
		location:   append([]Square(nil), b.location...),
		pawnsMoved: b.pawnsMoved,
	}
	for c := range b.captured {
		nb.captured[c] = append([]PieceID(nil), b.captured[c]...)
	}
	return nb
}

// Undo holds what Make changed beyond relocating the mover, so that Unmake
// can restore exactly the piece that was hidden.
type Undo struct {
	Captured      PieceID
	FirstPawnMove bool
}

// Make applies m: an occupant of the destination is pushed onto the
// mover's capture stack and removed from the grid, the mover is relocated
// and a pawn's first move is recorded. The returned Undo must be passed to
// Unmake for the same move; Make/Unmake pairs must nest.
func (b *Board) Make(m Move) Undo {
	u := Undo{Captured: NoPiece}
	mover := b.pieces[m.Piece]

	if target := b.squares[m.To.Col][m.To.Rank]; target != NoPiece {
		b.captured[mover.Colour] = append(b.captured[mover.Colour], target)
		b.location[target] = OffBoard
		u.Captured = target
	}

	b.squares[m.From.Col][m.From.Rank] = NoPiece
	b.squares[m.To.Col][m.To.Rank] = m.Piece
	b.location[m.Piece] = m.To

	if mover.Kind == Pawn {
		bit := uint64(1) << uint(m.Piece)
		if b.pawnsMoved[mover.Colour]&bit == 0 {
			b.pawnsMoved[mover.Colour] |= bit
			u.FirstPawnMove = true
		}
	}
	return u
}

// Unmake reverses a Make of the same move.
func (b *Board) Unmake(m Move, u Undo) {
	mover := b.pieces[m.Piece]

	b.squares[m.From.Col][m.From.Rank] = m.Piece
	b.location[m.Piece] = m.From
	b.squares[m.To.Col][m.To.Rank] = NoPiece

	if u.Captured != NoPiece {
		stack := b.captured[mover.Colour]
		b.captured[mover.Colour] = stack[:len(stack)-1]
		b.squares[m.To.Col][m.To.Rank] = u.Captured
		b.location[u.Captured] = m.To
	}

	if u.FirstPawnMove {
		b.pawnsMoved[mover.Colour] &^= uint64(1) << uint(m.Piece)
	}
}

// BoardState captures all mutable board state for comparison and for
// save/restore of real game positions.
type BoardState struct {
	Squares    [BoardSize][BoardSize]PieceID
	Locations  []Square
	Captured   [NumColours][]PieceID
	PawnsMoved [NumColours]uint64
}

// SaveState captures the current board state.
func (b *Board) SaveState() BoardState {
	s := BoardState{
		Squares:    b.squares,
		Locations:  make([]Square, len(b.location)),
		PawnsMoved: b.pawnsMoved,
	}
	copy(s.Locations, b.location)
	for c := range b.captured {
		s.Captured[c] = make([]PieceID, len(b.captured[c]))
		copy(s.Captured[c], b.captured[c])
	}
	return s
}

// RestoreState restores the board to a state saved from the same board.
// It must not be called while a search is running on the board.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.Squares
	b.location = append(b.location[:0], s.Locations...)
	for c := range s.Captured {
		b.captured[c] = append(b.captured[c][:0], s.Captured[c]...)
	}
	b.pawnsMoved = s.PawnsMoved
}
