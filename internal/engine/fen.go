// Package engine provides the rules collaborators of the search: board
// setup from FEN, pseudo-legal move generation, real move application and
// check, checkmate and stalemate detection.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Only the placement and side-to-move fields are used;
// castling, en passant and clocks are not modelled and are ignored.
// Pawns placed off their home rank are recorded as having moved.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, toMove, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error. It is meant
// for constant positions in tests and benchmarks.
func MustBoardFromFEN(fen string) *chess.Board {
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d columns: %w", rank+1, col, errors.ErrInvalidFEN)
			}
			rank--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			id := board.AddPiece(colour, kind, chess.Sq(col, rank))
			if id == chess.NoPiece {
				return fmt.Errorf("too many pieces: %w", errors.ErrInvalidFEN)
			}
			if kind == chess.Pawn && rank != pawnHomeRank(colour) {
				board.MarkPawnMoved(id)
			}
			col++
		}
	}
	if rank != 0 || col != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement %q: %w", positions, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves when the
// field is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// pawnHomeRank returns the rank a colour's pawns start on.
func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-" since neither is modelled.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.PieceAt(chess.Sq(col, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
