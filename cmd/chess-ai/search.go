package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/search"
)

// loadPosition builds the board for bestmove and bench.
func loadPosition(cfg *config.Config) (*chess.Board, chess.Colour, error) {
	fen := cfg.Game.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, toMove, err
	}
	s, err := searchSide(toMove)
	return board, s, err
}

func searchOptions(cfg *config.Config) []search.Option {
	return []search.Option{
		search.WithOrdering(cfg.Search.Ordering),
		search.WithOrderingPrefix(cfg.Search.OrderingPrefix),
		search.WithMirrorOrderingBias(cfg.Search.MirrorOrderingBias),
	}
}

func formatMove(r search.Result) string {
	if !r.HasMove {
		return "(none)"
	}
	return r.Move.String()
}

// runBestMove searches one position and prints the result.
func runBestMove(cfg *config.Config, out io.Writer) error {
	board, s, err := loadPosition(cfg)
	if err != nil {
		return err
	}
	d := cfg.Search.EffectiveDepth()
	searcher := search.New(board, searchOptions(cfg)...)

	start := time.Now()
	res := searcher.Search(d, search.Maximizing(s))
	elapsed := time.Since(start)

	fmt.Fprintf(out, "side     %s\n", s)
	fmt.Fprintf(out, "depth    %d\n", d)
	fmt.Fprintf(out, "static   %g\n", eval.Evaluate(board))
	fmt.Fprintf(out, "value    %g\n", res.Value)
	fmt.Fprintf(out, "bestmove %s\n", formatMove(res))
	fmt.Fprintf(out, "stats    %s\n", res.Stats)
	fmt.Fprintf(out, "time     %s\n", elapsed.Round(time.Microsecond))
	return nil
}

// runBench compares ordered and unordered alpha-beta with exhaustive
// minimax on the same position. All three must agree on the value.
func runBench(cfg *config.Config, out io.Writer) error {
	board, s, err := loadPosition(cfg)
	if err != nil {
		return err
	}
	d := cfg.Search.EffectiveDepth()
	maximizing := search.Maximizing(s)

	type run struct {
		name string
		fn   func() search.Result
	}
	ordered := search.New(board, searchOptions(cfg)...)
	unordered := search.New(board, search.WithOrdering(false))
	runs := []run{
		{"alpha-beta ordered", func() search.Result { return ordered.Search(d, maximizing) }},
		{"alpha-beta unordered", func() search.Result { return unordered.Search(d, maximizing) }},
		{"minimax", func() search.Result { return unordered.MiniMax(d, maximizing) }},
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "search\tvalue\tmove\tnodes\tleaves\tcutoffs\tevals\ttime\n")
	var values []float64
	for _, r := range runs {
		start := time.Now()
		res := r.fn()
		elapsed := time.Since(start)
		values = append(values, res.Value)
		fmt.Fprintf(tw, "%s\t%g\t%s\t%d\t%d\t%d\t%d\t%s\n", r.name, res.Value, formatMove(res),
			res.Stats.Nodes, res.Stats.Leaves, res.Stats.Cutoffs, res.Stats.Evaluations(),
			elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, v := range values[1:] {
		if v != values[0] {
			return fmt.Errorf("search values disagree: %v", values)
		}
	}
	return nil
}
