package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Direction offsets in generation order.
var (
	rookDirections   = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	queenDirections  = append(append([][2]int{}, rookDirections...), bishopDirections...)
	knightOffsets    = [][2]int{{-1, 2}, {1, 2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1}, {1, -2}, {-1, -2}}
)

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

// Destinations returns the pseudo-legal destination squares of a piece:
// on the board and not occupied by a friendly piece. Whether the move
// leaves the mover's king attacked is not considered. Captured pieces have
// no destinations.
func Destinations(board *chess.Board, id chess.PieceID) []chess.Square {
	return appendDestinations(nil, board, id)
}

func appendDestinations(dst []chess.Square, board *chess.Board, id chess.PieceID) []chess.Square {
	from := board.Location(id)
	if !from.OnBoard() {
		return dst
	}
	piece := board.Piece(id)

	switch piece.Kind {
	case chess.Pawn:
		return appendPawnDestinations(dst, board, piece, from)
	case chess.Knight:
		return appendSteps(dst, board, piece.Colour, from, knightOffsets)
	case chess.King:
		return appendSteps(dst, board, piece.Colour, from, queenDirections)
	case chess.Bishop:
		return appendSlides(dst, board, piece.Colour, from, bishopDirections)
	case chess.Rook:
		return appendSlides(dst, board, piece.Colour, from, rookDirections)
	case chess.Queen:
		return appendSlides(dst, board, piece.Colour, from, queenDirections)
	}
	return dst
}

// appendPawnDestinations adds single and double pushes onto empty squares
// and forward diagonal steps onto enemy-occupied squares.
func appendPawnDestinations(dst []chess.Square, board *chess.Board, pawn chess.Piece, from chess.Square) []chess.Square {
	dir := PawnDirection(pawn.Colour)

	one := from.Offset(0, dir)
	if one.OnBoard() && board.At(one) == chess.NoPiece {
		dst = append(dst, one)
		two := from.Offset(0, 2*dir)
		if !board.HasPawnMoved(pawn.ID) && two.OnBoard() && board.At(two) == chess.NoPiece {
			dst = append(dst, two)
		}
	}

	for _, dc := range [2]int{1, -1} {
		diag := from.Offset(dc, dir)
		if isEnemy(board, diag, pawn.Colour) {
			dst = append(dst, diag)
		}
	}
	return dst
}

// appendSteps adds single-step destinations for kings and knights.
func appendSteps(dst []chess.Square, board *chess.Board, colour chess.Colour, from chess.Square, offsets [][2]int) []chess.Square {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to.OnBoard() && !isFriendly(board, to, colour) {
			dst = append(dst, to)
		}
	}
	return dst
}

// appendSlides adds sliding destinations, stopping at and including the
// first occupied square unless it holds a friendly piece.
func appendSlides(dst []chess.Square, board *chess.Board, colour chess.Colour, from chess.Square, dirs [][2]int) []chess.Square {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			if board.At(to) != chess.NoPiece {
				if !isFriendly(board, to, colour) {
					dst = append(dst, to)
				}
				break // Blocked
			}
			dst = append(dst, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return dst
}

func isFriendly(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.PieceAt(sq)
	return ok && p.Colour == colour
}

func isEnemy(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	p, ok := board.PieceAt(sq)
	return ok && p.Colour != colour
}

// GenerateMoves returns every pseudo-legal move of colour. Pieces are
// visited file by file from a1, so the order is deterministic for a given
// board.
func GenerateMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	var dests []chess.Square

	for col := 0; col < chess.BoardSize; col++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(col, rank)
			piece, ok := board.PieceAt(from)
			if !ok || piece.Colour != colour {
				continue
			}
			dests = appendDestinations(dests[:0], board, piece.ID)
			for _, to := range dests {
				moves = append(moves, chess.NewMove(from, to, piece.ID))
			}
		}
	}
	return moves
}

// PseudoLegal is the stateless move generator used by the search.
type PseudoLegal struct{}

// GenerateMoves implements the search's generator contract.
func (PseudoLegal) GenerateMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return GenerateMoves(board, colour)
}

// FindMove returns the candidate move of colour from one square to another.
func FindMove(board *chess.Board, colour chess.Colour, from, to chess.Square) (chess.Move, bool) {
	id := board.At(from)
	if id == chess.NoPiece || board.Piece(id).Colour != colour {
		return chess.Move{}, false
	}
	for _, dest := range Destinations(board, id) {
		if dest == to {
			return chess.NewMove(from, to, id), true
		}
	}
	return chess.Move{}, false
}
