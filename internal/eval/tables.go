package eval

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Table is a piece-square table indexed [rank][col], rank 0 being White's
// back rank.
type Table [chess.BoardSize][chess.BoardSize]float64

// Placement bonuses are small next to material, so captures dominate.
var (
	pawnWhite = Table{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0.5, 1, 1, -2, -2, 1, 1, 0.5},
		{0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5},
		{0, 0, 0, 2, 2, 0, 0, 0},
		{0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	pawnBlack = Table{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5},
		{0, 0, 0, 2, 2, 0, 0, 0},
		{0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5},
		{0.5, 1, 1, -2, -2, 1, 1, 0.5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	bishopWhite = Table{
		{-2, -1, -1, -1, -1, -1, -1, -2},
		{-1, 0.5, 0, 0, 0, 0, 0.5, -1},
		{-1, 1.5, 1, 1, 1, 1, 1, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1},
		{-1, 0, 0.5, 1, 1, 0.5, 0, -1},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-2, -1, -1, -1, -1, -1, -1, -2},
	}

	bishopBlack = Table{
		{-2, -1, -1, -1, -1, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 0.5, 1, 1, 0.5, 0, -1},
		{-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{-1, 1.5, 1, 1, 1, 1, 1, -1},
		{-1, 0.5, 0, 0, 0, 0, 0.5, -1},
		{-2, -1, -1, -1, -1, -1, -1, -2},
	}

	knight = Table{
		{-5, -4, -3, -3, -3, -3, -4, -5},
		{-4, -2, 0, 0, 0, 0, -2, -4},
		{-3, 0, 1, 1.5, 1.5, 1, 0, -3},
		{-3, 0.5, 1.5, 2, 2, 1.5, 0.5, -3},
		{-3, 0, 1.5, 2, 2, 1.5, 0, -3},
		{-3, 0.5, 1, 1.5, 1.5, 1, 0.5, -3},
		{-4, -2, 0, 0.5, 0.5, 0, -2, -4},
		{-5, -4, -3, -3, -3, -3, -4, -5},
	}

	rookWhite = Table{
		{0, 0, 0, 0.5, 0.5, 0, 0, 0},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{0.5, 1, 1, 1, 1, 1, 1, 0.5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	rookBlack = Table{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0.5, 1, 1, 1, 1, 1, 1, 0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
		{0, 0, 0, 0.5, 0.5, 0, 0, 0},
	}

	queen = Table{
		{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1},
		{-0.5, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
		{0, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
		{-1, 0.5, 0.5, 0.5, 0.5, 0.5, 0, -1},
		{-1, 0, 0.5, 0, 0, 0, 0, -1},
		{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
	}

	kingWhite = Table{
		{2, 3, 1, 0, 0, 1, 3, 2},
		{2, 2, 0, 0, 0, 0, 2, 2},
		{-1, -2, -2, -2, -2, -2, -2, -1},
		{-2, -3, -3, -4, -4, -3, -3, -2},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
	}

	kingBlack = Table{
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-2, -3, -3, -4, -4, -3, -3, -2},
		{-1, -2, -2, -2, -2, -2, -2, -1},
		{2, 2, 0, 0, 0, 0, 2, 2},
		{2, 3, 1, 0, 0, 1, 3, 2},
	}
)

// pieceSquare maps (colour, kind) to its table. Knight and queen tables
// are shared by both sides.
var pieceSquare = [chess.NumColours][chess.NumKinds]*Table{
	chess.White: {
		chess.Pawn:   &pawnWhite,
		chess.Knight: &knight,
		chess.Bishop: &bishopWhite,
		chess.Rook:   &rookWhite,
		chess.Queen:  &queen,
		chess.King:   &kingWhite,
	},
	chess.Black: {
		chess.Pawn:   &pawnBlack,
		chess.Knight: &knight,
		chess.Bishop: &bishopBlack,
		chess.Rook:   &rookBlack,
		chess.Queen:  &queen,
		chess.King:   &kingBlack,
	},
}

// materialValues is indexed by kind.
var materialValues = [chess.NumKinds]float64{
	chess.Pawn:   10,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   9000,
}
