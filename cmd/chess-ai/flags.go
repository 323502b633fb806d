// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
)

var (
	// Search options
	depth          = flag.Int("depth", -1, "Search depth in plies (overrides -difficulty)")
	difficulty     = flag.String("difficulty", "medium", "Difficulty: easy, medium, hard")
	noOrdering     = flag.Bool("no-ordering", false, "Search moves in generation order")
	orderingPrefix = flag.Int("ordering-prefix", 6, "Number of moves ranked by static evaluation")
	mirrorOrdering = flag.Bool("mirror-ordering", false, "Rank highest static score first for both sides")

	// Position options
	startFEN = flag.String("fen", "", "Start position in FEN (default: standard position)")
	side     = flag.String("side", "", "Side to search for bestmove and bench (default: side to move)")

	// Game options
	aiSide          = flag.String("ai", "black", "Side the AI plays in play mode")
	thinkDelay      = flag.Duration("think-delay", 500*time.Millisecond, "Pause before each AI search in play mode")
	maxPlies        = flag.Int("maxplies", 200, "Draw after this many real moves (0 = no limit)")
	repetitionLimit = flag.Int("repetition", 3, "Draw when a position occurs this often (0 = off)")

	// Output options
	recordFile = flag.String("record", "", "Write the game record as PGN (.zst suffix compresses)")
	compress   = flag.Bool("z", false, "Compress the game record with zstd")

	// Analysis options
	enginePath    = flag.String("analyse", "", "UCI engine used to score each real position")
	analyseDepth  = flag.Int("analyse-depth", 12, "Search depth of the analysis engine")
	engineHash    = flag.Int("analyse-hash", 64, "Analysis engine hash size in MB")
	engineThreads = flag.Int("analyse-threads", 1, "Analysis engine threads")

	// Self-play options
	games        = flag.Int("games", 4, "Number of self-play games")
	workers      = flag.Int("workers", 2, "Number of self-play workers")
	openingPlies = flag.Int("opening-plies", 4, "Random moves played before the AIs take over")
	seed         = flag.Uint64("seed", 1, "Seed for random self-play openings")
	stopOnError  = flag.Bool("stop-on-error", false, "Skip queued self-play games after one fails")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)
	cfg.Log.Level = *logLevel
	return cfg.Validate()
}

// applySearchFlags configures depth and move ordering.
func applySearchFlags(cfg *config.Config) error {
	d, err := config.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}
	cfg.Search.Difficulty = d
	cfg.Search.Depth = *depth
	cfg.Search.Ordering = !*noOrdering
	cfg.Search.OrderingPrefix = *orderingPrefix
	cfg.Search.MirrorOrderingBias = *mirrorOrdering
	return nil
}

// applyGameFlags configures the turn loop.
func applyGameFlags(cfg *config.Config) error {
	c, err := chess.ParseColour(*aiSide)
	if err != nil {
		return fmt.Errorf("-ai: %w", err)
	}
	cfg.Game.AISide = c
	cfg.Game.ThinkDelay = *thinkDelay
	cfg.Game.MaxPlies = *maxPlies
	cfg.Game.RepetitionLimit = *repetitionLimit
	cfg.Game.StartFEN = *startFEN
	return nil
}

// applyOutputFlags configures the game record file.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.RecordFile = *recordFile
	cfg.Output.Compress = *compress
}

// applyAnalysisFlags configures the optional analysis engine.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.EnginePath = *enginePath
	cfg.Analysis.Depth = *analyseDepth
	cfg.Analysis.HashMB = *engineHash
	cfg.Analysis.Threads = *engineThreads
}

// searchSide returns the -side flag as a colour, or toMove when unset.
func searchSide(toMove chess.Colour) (chess.Colour, error) {
	if *side == "" {
		return toMove, nil
	}
	c, err := chess.ParseColour(*side)
	if err != nil {
		return toMove, fmt.Errorf("-side: %w", err)
	}
	return c, nil
}
