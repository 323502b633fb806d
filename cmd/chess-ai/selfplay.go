package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
	"github.com/lgbarn/chess-ai-go/internal/record"
	"github.com/lgbarn/chess-ai-go/internal/worker"
)

// selfPlaySummary tallies finished self-play games.
type selfPlaySummary struct {
	games       int
	results     map[string]int
	failed      int
	interrupted int
	skipped     int
	stopped     bool
	duplicates  int
	unique      int
	plies       int
}

// runSelfPlay plays -games AI games on -workers goroutines. Games still
// queued when ctx is cancelled, or after a failure with -stop-on-error,
// are skipped.
func runSelfPlay(ctx context.Context, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	spCfg, err := config.NewConfigBuilderFrom(cfg).WithThinkDelay(0).Build()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(*seed, uint64(*games)))
	items := make([]worker.WorkItem, 0, *games)
	for i := 0; i < *games; i++ {
		opening, err := worker.RandomOpening(rng, spCfg.Game.StartFEN, *openingPlies)
		if err != nil {
			return err
		}
		items = append(items, worker.WorkItem{Index: i, Opening: opening})
	}

	pool := worker.NewPool(worker.SelfPlay(spCfg, log),
		worker.WithWorkers(*workers), worker.WithStopOnError(*stopOnError))
	log.Info().Int("games", len(items)).Int("workers", pool.Workers()).Msg("self-play started")

	detector := hashing.NewThreadSafeDuplicateDetector(true, 0)
	sum := selfPlaySummary{results: make(map[string]int)}
	pgns := make([]string, len(items))
	for res := range pool.Run(ctx, items) {
		sum.games++
		if res.Error != nil {
			if errors.Is(res.Error, context.Canceled) || errors.Is(res.Error, context.DeadlineExceeded) {
				sum.interrupted++
				log.Warn().Err(res.Error).Int("game", res.Index).Msg("self-play game interrupted")
				continue
			}
			sum.failed++
			log.Warn().Err(res.Error).Int("game", res.Index).Msg("self-play game failed")
			continue
		}
		sum.results[res.Result]++
		sum.plies += res.Plies
		if detector.CheckAndAdd(hashing.GameSignature{Hash: res.FinalHash, Plies: res.Plies}) {
			sum.duplicates++
		}
		pgns[res.Index] = res.PGN
		fmt.Fprintf(out, "game %d: %s (%s) in %d plies\n", res.Index+1, res.Result, res.Status, res.Plies)
	}
	sum.skipped = pool.Skipped()
	sum.stopped = pool.Stopped()
	sum.unique = detector.UniqueCount()

	printSummary(out, sum)

	if cfg.Output.RecordFile != "" {
		kept := pgns[:0]
		for _, p := range pgns {
			if p != "" {
				kept = append(kept, p)
			}
		}
		if err := record.WriteGames(cfg.Output.RecordFile, kept, cfg.Output.ShouldCompress()); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func printSummary(out io.Writer, sum selfPlaySummary) {
	fmt.Fprintf(out, "%d games: white %d, black %d, drawn %d, failed %d, duplicates %d\n",
		sum.games, sum.results["1-0"], sum.results["0-1"], sum.results["1/2-1/2"], sum.failed, sum.duplicates)
	if n := sum.games - sum.failed - sum.interrupted; n > 0 {
		fmt.Fprintf(out, "average length %.1f plies, %d distinct final positions\n", float64(sum.plies)/float64(n), sum.unique)
	}
	if sum.interrupted > 0 || sum.skipped > 0 {
		fmt.Fprintf(out, "interrupted %d, skipped %d\n", sum.interrupted, sum.skipped)
	}
	if sum.stopped {
		fmt.Fprintln(out, "stopped after a failed game")
	}
}
