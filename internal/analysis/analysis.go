// Package analysis scores real game positions with an external UCI engine
// such as Stockfish. Scores are reported from Black's perspective, the same
// convention as the built-in evaluator.
package analysis

import (
	"fmt"

	"github.com/freeeve/uci"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// Score is an engine verdict on one position.
type Score struct {
	// Value is centipawns, or moves to mate when Mate is set. Positive
	// favours Black.
	Value    int
	Mate     bool
	Depth    int
	BestMove string
}

func (s Score) String() string {
	if s.Mate {
		return fmt.Sprintf("mate %d (depth %d)", s.Value, s.Depth)
	}
	return fmt.Sprintf("cp %d (depth %d)", s.Value, s.Depth)
}

// Normalize converts a side-to-move relative engine score to Black's
// perspective.
func Normalize(score int, toMove chess.Colour) int {
	if toMove == chess.White {
		return -score
	}
	return score
}

// Analyst owns one engine process.
type Analyst struct {
	eng   *uci.Engine
	depth int
	log   zerolog.Logger
}

// New starts the engine named in cfg and applies its options.
func New(cfg *config.AnalysisConfig, log zerolog.Logger) (*Analyst, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("no engine path configured: %w", errors.ErrEngineUnavailable)
	}
	eng, err := uci.NewEngine(cfg.EnginePath)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w: %v", cfg.EnginePath, errors.ErrEngineUnavailable, err)
	}

	opts := uci.Options{
		Hash:    cfg.HashMB,
		Threads: cfg.Threads,
		MultiPV: 1,
		Ponder:  false,
		OwnBook: false,
	}
	if err := eng.SetOptions(opts); err != nil {
		eng.Close()
		return nil, fmt.Errorf("set engine options: %w: %v", errors.ErrEngineUnavailable, err)
	}

	log.Info().Str("engine", cfg.EnginePath).Int("depth", cfg.Depth).Msg("analysis engine started")
	return &Analyst{eng: eng, depth: cfg.Depth, log: log}, nil
}

// Analyse scores the position given as FEN with toMove to play.
func (a *Analyst) Analyse(fen string, toMove chess.Colour) (Score, error) {
	if err := a.eng.SetFEN(fen); err != nil {
		return Score{}, fmt.Errorf("set FEN: %w", err)
	}
	results, err := a.eng.GoDepth(a.depth, uci.HighestDepthOnly)
	if err != nil {
		return Score{}, fmt.Errorf("engine eval: %w", err)
	}
	if len(results.Results) == 0 {
		return Score{}, fmt.Errorf("no results from engine")
	}

	best := results.Results[0]
	for _, r := range results.Results {
		if r.Depth > best.Depth {
			best = r
		}
	}

	s := Score{
		Value:    Normalize(best.Score, toMove),
		Mate:     best.Mate,
		Depth:    best.Depth,
		BestMove: results.BestMove,
	}
	a.log.Debug().Str("fen", fen).Stringer("score", s).Msg("analysed")
	return s, nil
}

// Close stops the engine process.
func (a *Analyst) Close() {
	a.eng.Close()
}
