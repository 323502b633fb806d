package worker

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/game"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// SelfPlay returns a PlayFunc that plays the AI against itself from the
// configured start position. The configuration is only read. A cancelled
// context ends the game between turns with the context's error.
func SelfPlay(cfg *config.Config, log zerolog.Logger) PlayFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index}
		glog := log.With().Int("game", item.Index).Logger()

		g, err := game.New(cfg, "AI", "AI", game.WithLogger(glog), game.WithSelfPlay())
		if err != nil {
			res.Error = err
			return res
		}
		for _, text := range item.Opening {
			m, err := engine.ParseMove(g.Board(), g.ToMove(), text)
			if err == nil {
				_, err = g.Play(m)
			}
			if err != nil {
				res.Error = fmt.Errorf("game %d opening: %w", item.Index, err)
				return res
			}
		}

		for !g.Report().Status.Over() {
			if err := ctx.Err(); err != nil {
				res.Error = fmt.Errorf("game %d interrupted at ply %d: %w", item.Index, g.Ply(), err)
				break
			}
			if _, err := g.PlayAITurn(); err != nil {
				// A turn without a move ends the game; anything else is a failure.
				if !g.Report().Status.Over() {
					res.Error = err
				}
				break
			}
		}

		board := g.Board()
		res.Result = g.Report().Result()
		res.Status = g.Report().Status.String()
		res.Plies = g.Ply()
		res.FinalHash = hashing.GenerateZobristHash(board, g.ToMove())
		res.PGN = g.Record().PGN()
		return res
	}
}

// RandomOpening returns up to plies random candidate moves from the start
// position, alternating sides from toMove. Deterministic for a given rng.
func RandomOpening(rng *rand.Rand, startFEN string, plies int) ([]string, error) {
	if startFEN == "" {
		startFEN = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}

	opening := make([]string, 0, plies)
	for i := 0; i < plies; i++ {
		moves := engine.GenerateMoves(board, toMove)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.IntN(len(moves))]
		if p, ok := board.PieceAt(m.To); ok && p.Kind == chess.King {
			break
		}
		board.Make(m)
		opening = append(opening, m.String())
		toMove = toMove.Opposite()
	}
	return opening, nil
}
