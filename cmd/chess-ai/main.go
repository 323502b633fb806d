// chess-ai plays chess against a human or itself with a depth-limited
// alpha-beta search, and reports search results for single positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/logx"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-ai version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := logx.NewLogger(cfg.Log.Output, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, flag.Arg(0), cfg, log, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches a command. Cancelling ctx interrupts self-play.
func run(ctx context.Context, command string, cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) error {
	switch command {
	case "bestmove":
		return runBestMove(cfg, out)
	case "play", "":
		return runPlay(cfg, log, in, out)
	case "selfplay":
		return runSelfPlay(ctx, cfg, log, out)
	case "bench":
		return runBench(cfg, out)
	}
	return fmt.Errorf("unknown command %q (want bestmove, play, selfplay or bench)", command)
}

// usage prints the usage message.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-ai [options] [command]\n\n")
	fmt.Fprintf(os.Stderr, "A depth-limited alpha-beta chess AI.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  play      Play against the AI on stdin (default)\n")
	fmt.Fprintf(os.Stderr, "  bestmove  Search one position and print the chosen move\n")
	fmt.Fprintf(os.Stderr, "  selfplay  Play AI against AI on a worker pool\n")
	fmt.Fprintf(os.Stderr, "  bench     Compare ordered, unordered and exhaustive search\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nIn play mode enter moves as e2e4, or: undo, board, quit\n")
}
