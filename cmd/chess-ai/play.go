package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/analysis"
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/game"
)

// runPlay plays a human on in against the AI until the game ends, the
// input runs out or the human quits.
func runPlay(cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) error {
	opts := []game.Option{game.WithLogger(log)}
	if cfg.Analysis.Enabled() {
		a, err := analysis.New(cfg.Analysis, log)
		if err != nil {
			return err
		}
		defer a.Close()
		opts = append(opts, game.WithAnalyst(a))
	}

	white, black := "Human", "AI"
	if cfg.Game.AISide == chess.White {
		white, black = black, white
	}
	g, err := game.New(cfg, white, black, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "You play %s at depth %d.\n", cfg.Game.AISide.Opposite(), g.Depth())
	fmt.Fprint(out, renderBoard(g.Board()))

	scanner := bufio.NewScanner(in)
	for !g.Report().Status.Over() {
		if g.ToMove() == g.AISide() {
			res, err := g.PlayAITurn()
			if err != nil && !errors.Is(err, chesserrors.ErrNoMove) {
				return err
			}
			if res.HasMove {
				fmt.Fprintf(out, "AI plays %s (value %g, %d nodes)\n", res.Move.Move, res.Value, res.Stats.Nodes)
				printStatus(out, res.Move.Report)
				fmt.Fprint(out, renderBoard(g.Board()))
			}
			continue
		}

		fmt.Fprintf(out, "%s> ", g.ToMove())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return finishGame(cfg, g, out)
		case "board":
			fmt.Fprint(out, renderBoard(g.Board()))
			continue
		case "undo":
			if err := g.Undo(); err != nil {
				fmt.Fprintf(out, "cannot undo: %v\n", err)
				continue
			}
			fmt.Fprint(out, renderBoard(g.Board()))
			continue
		}

		res, err := g.PlayHuman(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		printStatus(out, res.Report)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return finishGame(cfg, g, out)
}

func printStatus(out io.Writer, rep game.Report) {
	switch {
	case rep.Status.Over():
		fmt.Fprintf(out, "Game over: %s (%s)\n", rep, rep.Result())
	case rep.InCheck:
		fmt.Fprintln(out, "Check!")
	}
}

// finishGame prints the result and writes the record if one is configured.
func finishGame(cfg *config.Config, g *game.Game, out io.Writer) error {
	fmt.Fprintf(out, "Result: %s after %d plies\n", g.Report().Result(), g.Ply())
	if cfg.Output.RecordFile == "" {
		return nil
	}
	if err := g.Record().WriteFile(cfg.Output.RecordFile, cfg.Output.ShouldCompress()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Record written to %s\n", cfg.Output.RecordFile)
	return nil
}

// renderBoard draws the board from White's side, rank 8 first.
func renderBoard(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for col := 0; col < chess.BoardSize; col++ {
			c := byte('.')
			if p, ok := board.PieceAt(chess.Sq(col, rank)); ok {
				c = p.Letter()
			}
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
