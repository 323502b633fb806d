package hashing

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board := engine.MustBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board, chess.White)
			}
		})
	}
}

func BenchmarkRepetitionTracker(b *testing.B) {
	r := NewRepetitionTracker(3)
	for i := 0; i < b.N; i++ {
		r.Push(uint64(i % 64))
		if i%2 == 1 {
			r.Pop()
		}
	}
}
