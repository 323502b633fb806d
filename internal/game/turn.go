package game

import (
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/search"
)

// TurnResult is delivered once an AI turn has finished and its move, if
// any, has been played.
type TurnResult struct {
	Side    chess.Colour
	Depth   int
	Value   float64
	Move    MoveResult
	HasMove bool
	Stats   search.Stats
	Elapsed time.Duration
	Err     error
}

// StartAITurn searches for the side to move on a new goroutine, after the
// configured think delay, and plays the chosen move. The returned channel
// receives exactly one TurnResult and is then closed. While the turn runs,
// real moves and a second StartAITurn fail with ErrSearchInProgress. In a
// human game the AI may only start on its own turn.
func (g *Game) StartAITurn() (<-chan TurnResult, error) {
	g.mu.Lock()
	switch {
	case g.thinking.Load():
		g.mu.Unlock()
		return nil, errors.ErrSearchInProgress
	case g.report.Status.Over():
		g.mu.Unlock()
		return nil, errors.ErrGameOver
	case !g.selfPlay && g.toMove != g.aiSide:
		err := g.moveError(errors.ErrNotYourTurn, "")
		g.mu.Unlock()
		return nil, err
	}
	g.thinking.Store(true)
	g.mu.Unlock()

	out := make(chan TurnResult, 1)
	go func() {
		defer close(out)
		if g.thinkDelay > 0 {
			time.Sleep(g.thinkDelay)
		}
		out <- g.runTurn()
	}()
	return out, nil
}

// runTurn holds g.mu for the whole search and the real move, and ends the
// turn before releasing it.
func (g *Game) runTurn() TurnResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer g.thinking.Store(false)

	side := g.toMove
	start := time.Now()
	sr := g.searcher.Search(g.depth, search.Maximizing(side))
	res := TurnResult{
		Side:    side,
		Depth:   g.depth,
		Value:   sr.Value,
		HasMove: sr.HasMove,
		Stats:   sr.Stats,
		Elapsed: time.Since(start),
	}

	g.log.Info().
		Str("side", side.String()).
		Int("depth", g.depth).
		Float64("value", sr.Value).
		Str("move", moveText(sr)).
		Int("nodes", sr.Stats.Nodes).
		Int("leaves", sr.Stats.Leaves).
		Int("cutoffs", sr.Stats.Cutoffs).
		Dur("elapsed", res.Elapsed).
		Msg("ai move")

	if !sr.HasMove {
		g.report = Report{Status: NoMove}
		g.rec.SetResult(g.report.Result(), g.report.Status.String())
		g.log.Info().Int("ply", g.ply).Str("side", side.String()).Msg("game over: no move")
		res.Err = g.moveError(errors.ErrNoMove, "")
		return res
	}

	mr, err := g.playLocked(sr.Move)
	res.Move, res.Err = mr, err
	return res
}

func moveText(r search.Result) string {
	if !r.HasMove {
		return "-"
	}
	return r.Move.String()
}

// PlayAITurn runs an AI turn and waits for it.
func (g *Game) PlayAITurn() (TurnResult, error) {
	ch, err := g.StartAITurn()
	if err != nil {
		return TurnResult{}, err
	}
	res := <-ch
	return res, res.Err
}
