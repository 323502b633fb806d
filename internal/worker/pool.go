// Package worker runs independent self-play games on a bounded pool of
// goroutines. Every game owns its own board, so workers share nothing but
// the read-only configuration.
package worker

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// WorkItem is one self-play game to run.
type WorkItem struct {
	Index   int      // Position in the submitted batch
	Opening []string // Coordinate moves played before the AIs take over
}

// ProcessResult is the outcome of one self-play game.
type ProcessResult struct {
	Index     int
	Result    string // PGN result string
	Status    string // Why the game ended
	Plies     int
	FinalHash uint64 // Zobrist hash of the final position
	PGN       string // Rules-complete record of the game
	Error     error
}

// PlayFunc plays one game. It should return early, with an error, once
// ctx is cancelled.
type PlayFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool plays a batch of games with at most Workers() running at once.
type Pool struct {
	workers     int
	play        PlayFunc
	stopOnError bool

	stopped atomic.Bool
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of games played concurrently.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithStopOnError stops the batch after the first failed game. Games
// already running are finished; the rest are skipped. Games interrupted by
// ctx do not count as failures.
func WithStopOnError(enabled bool) PoolOption {
	return func(p *Pool) {
		p.stopOnError = enabled
	}
}

// NewPool creates a pool that plays games with play. Default: 1 worker.
func NewPool(play PlayFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, play: play}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run plays items and streams their results. The channel is closed once
// every item has been played or skipped. Items are skipped after Stop or
// once ctx is done; cancelling ctx also interrupts running games.
func (p *Pool) Run(ctx context.Context, items []WorkItem) <-chan ProcessResult {
	out := make(chan ProcessResult, p.workers)

	var g errgroup.Group
	g.SetLimit(p.workers)

	go func() {
		defer close(out)
		for _, item := range items {
			if p.halted(ctx) {
				p.skipped.Add(1)
				continue
			}
			// Blocks while all workers are busy.
			g.Go(func() error {
				if p.halted(ctx) {
					p.skipped.Add(1)
					return nil
				}
				res := p.play(ctx, item)
				if res.Error != nil && p.stopOnError && ctx.Err() == nil {
					p.Stop()
				}
				out <- res
				return nil
			})
		}
		_ = g.Wait()
	}()
	return out
}

func (p *Pool) halted(ctx context.Context) bool {
	return p.stopped.Load() || ctx.Err() != nil
}

// Stop skips every game that has not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Skipped returns the number of games that were never played.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Workers returns the number of games played concurrently.
func (p *Pool) Workers() int {
	return p.workers
}
