// Package game runs a real game between a human and the AI, or between two
// AIs. It owns the board, applies real moves, reports game status and runs
// AI turns off the caller's goroutine.
//
// A running search owns the board: real moves and take-backs are rejected
// with ErrSearchInProgress until the search's move has been played.
package game

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/analysis"
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
	"github.com/lgbarn/chess-ai-go/internal/logx"
	"github.com/lgbarn/chess-ai-go/internal/record"
	"github.com/lgbarn/chess-ai-go/internal/search"
)

// Analyst scores real positions. *analysis.Analyst implements it.
type Analyst interface {
	Analyse(fen string, toMove chess.Colour) (analysis.Score, error)
}

// snapshot is the state before a real move, kept for take-back.
type snapshot struct {
	state  chess.BoardState
	toMove chess.Colour
	report Report
}

// Game is one real game.
type Game struct {
	mu sync.Mutex

	board    *chess.Board
	toMove   chess.Colour
	aiSide   chess.Colour
	searcher *search.Searcher
	depth    int

	thinkDelay time.Duration
	maxPlies   int
	ply        int

	reps    *hashing.RepetitionTracker
	rec     *record.Record
	analyst Analyst
	log     zerolog.Logger

	report  Report
	history []snapshot

	// selfPlay lets the AI move for both sides.
	selfPlay bool
	// thinking is only changed with mu held. It is also read without mu
	// so that moves fail fast instead of waiting for a running search.
	thinking atomic.Bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithAnalyst scores every real position with an external engine.
func WithAnalyst(a Analyst) Option {
	return func(g *Game) {
		g.analyst = a
	}
}

// WithSelfPlay lets AI turns be started for either side.
func WithSelfPlay() Option {
	return func(g *Game) {
		g.selfPlay = true
	}
}

// New creates a game from the configuration. white and black name the
// players in the game record.
func New(cfg *config.Config, white, black string, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fen := cfg.Game.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	rec, err := record.New(engine.BoardToFEN(board, toMove), white, black)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:  board,
		toMove: toMove,
		aiSide: cfg.Game.AISide,
		searcher: search.New(board,
			search.WithOrdering(cfg.Search.Ordering),
			search.WithOrderingPrefix(cfg.Search.OrderingPrefix),
			search.WithMirrorOrderingBias(cfg.Search.MirrorOrderingBias),
		),
		depth:      cfg.Search.EffectiveDepth(),
		thinkDelay: cfg.Game.ThinkDelay,
		maxPlies:   cfg.Game.MaxPlies,
		reps:       hashing.NewRepetitionTracker(cfg.Game.RepetitionLimit),
		rec:        rec,
		log:        logx.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reps.Push(hashing.GenerateZobristHash(board, toMove))
	return g, nil
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

// AISide returns the colour the AI plays against a human.
func (g *Game) AISide() chess.Colour {
	return g.aiSide
}

// Depth returns the search depth used for AI turns.
func (g *Game) Depth() int {
	return g.depth
}

// Ply returns the number of real moves played.
func (g *Game) Ply() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ply
}

// Report returns the status after the last real move.
func (g *Game) Report() Report {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.report
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// FEN returns the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.BoardToFEN(g.board, g.toMove)
}

// Record returns the game record.
func (g *Game) Record() *record.Record {
	return g.rec
}

// Thinking reports whether an AI turn is running.
func (g *Game) Thinking() bool {
	return g.thinking.Load()
}

// MoveResult is the outcome of a real move.
type MoveResult struct {
	Move        chess.Move
	Side        chess.Colour
	Captured    chess.Piece
	HasCaptured bool
	Report      Report
}

// PlayHuman plays a coordinate move ("e2e4") for the human side.
func (g *Game) PlayHuman(text string) (MoveResult, error) {
	if g.thinking.Load() {
		return MoveResult{}, errors.ErrSearchInProgress
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.thinking.Load() {
		return MoveResult{}, errors.ErrSearchInProgress
	}
	if g.selfPlay || g.toMove == g.aiSide {
		return MoveResult{}, g.moveError(errors.ErrNotYourTurn, text)
	}
	if g.report.Status.Over() {
		return MoveResult{}, g.moveError(errors.ErrGameOver, text)
	}
	m, err := engine.ParseMove(g.board, g.toMove, text)
	if err != nil {
		return MoveResult{}, g.moveError(err, text)
	}
	return g.playLocked(m)
}

// Play plays a move for the side to move, whoever controls it.
func (g *Game) Play(m chess.Move) (MoveResult, error) {
	if g.thinking.Load() {
		return MoveResult{}, errors.ErrSearchInProgress
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.thinking.Load() {
		return MoveResult{}, errors.ErrSearchInProgress
	}
	if g.report.Status.Over() {
		return MoveResult{}, g.moveError(errors.ErrGameOver, m.String())
	}
	return g.playLocked(m)
}

func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{Err: err, Ply: g.ply + 1, Side: g.toMove.String(), MoveText: text}
}

// playLocked applies a real move and updates status, repetition, record
// and analysis. g.mu must be held.
func (g *Game) playLocked(m chess.Move) (MoveResult, error) {
	before := snapshot{state: g.board.SaveState(), toMove: g.toMove, report: g.report}
	mover := g.toMove

	res, err := engine.ApplyRealMove(g.board, mover, m)
	if err != nil {
		return MoveResult{}, g.moveError(err, m.String())
	}
	g.history = append(g.history, before)
	g.ply++
	g.toMove = mover.Opposite()
	g.report = g.evaluateStatus(mover, res.KingCaptured)

	if res.HasCaptured {
		g.log.Info().Int("ply", g.ply).Str("side", mover.String()).
			Str("move", m.String()).Str("captured", res.Captured.String()).Msg("capture")
	}
	g.pushRecord(res.Move, mover)
	g.analyse()

	if g.report.Status.Over() {
		g.log.Info().Int("ply", g.ply).Str("status", g.report.String()).
			Str("result", g.report.Result()).Msg("game over")
	}
	return MoveResult{
		Move:        res.Move,
		Side:        mover,
		Captured:    res.Captured,
		HasCaptured: res.HasCaptured,
		Report:      g.report,
	}, nil
}

func (g *Game) pushRecord(m chess.Move, mover chess.Colour) {
	if err := g.rec.Push(m, mover); err != nil {
		g.log.Warn().Err(err).Msg("game record stopped following the game")
	}
	if g.report.Status.Over() {
		g.rec.SetResult(g.report.Result(), g.report.Status.String())
	}
}

func (g *Game) analyse() {
	if g.analyst == nil {
		return
	}
	score, err := g.analyst.Analyse(engine.BoardToFEN(g.board, g.toMove), g.toMove)
	if err != nil {
		g.log.Warn().Err(err).Int("ply", g.ply).Msg("analysis failed")
		return
	}
	g.log.Info().Int("ply", g.ply).Stringer("score", score).Str("best", score.BestMove).Msg("analysis")
}

// Undo takes back real moves until the human side is to move again, so
// that a human/AI move pair is removed in one call. In self-play it takes
// back a single move.
func (g *Game) Undo() error {
	if g.thinking.Load() {
		return errors.ErrSearchInProgress
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.thinking.Load() {
		return errors.ErrSearchInProgress
	}
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	for len(g.history) > 0 {
		g.undoLocked()
		if g.selfPlay || g.toMove != g.aiSide {
			break
		}
	}
	g.log.Info().Int("ply", g.ply).Msg("take-back")
	return nil
}

func (g *Game) undoLocked() {
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board.RestoreState(last.state)
	g.toMove = last.toMove
	g.report = last.report
	g.ply--
	g.reps.Pop()
	if err := g.rec.Pop(); err != nil {
		g.log.Warn().Err(err).Msg("record take-back failed")
	}
}

// String summarises the game state.
func (g *Game) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("ply %d, %s to move, %s", g.ply, g.toMove, g.report)
}
