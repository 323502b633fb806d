package main

import (
	"errors"
	"testing"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
)

// saveRestoreBool sets a flag pointer and returns a func that restores it.
// Usage: defer saveRestoreBool(noOrdering, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if got := cfg.Search.EffectiveDepth(); got != 3 {
		t.Errorf("EffectiveDepth() = %d; want 3", got)
	}
	if !cfg.Search.Ordering || cfg.Search.OrderingPrefix != 6 {
		t.Errorf("ordering = %v/%d; want on/6", cfg.Search.Ordering, cfg.Search.OrderingPrefix)
	}
	if cfg.Game.AISide != chess.Black {
		t.Errorf("AISide = %v; want Black", cfg.Game.AISide)
	}
	if cfg.Game.ThinkDelay != 500*time.Millisecond {
		t.Errorf("ThinkDelay = %v; want 500ms", cfg.Game.ThinkDelay)
	}
	if cfg.Analysis.Enabled() {
		t.Error("analysis should be off without -analyse")
	}
}

func TestApplySearchFlags(t *testing.T) {
	t.Run("difficulty picks depth", func(t *testing.T) {
		defer saveRestoreString(difficulty, "hard")()
		cfg := config.NewConfig()
		if err := applySearchFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if got := cfg.Search.EffectiveDepth(); got != 4 {
			t.Errorf("EffectiveDepth() = %d; want 4", got)
		}
	})

	t.Run("depth overrides difficulty", func(t *testing.T) {
		defer saveRestoreString(difficulty, "easy")()
		defer saveRestoreInt(depth, 5)()
		cfg := config.NewConfig()
		if err := applySearchFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if got := cfg.Search.EffectiveDepth(); got != 5 {
			t.Errorf("EffectiveDepth() = %d; want 5", got)
		}
	})

	t.Run("ordering flags", func(t *testing.T) {
		defer saveRestoreBool(noOrdering, true)()
		defer saveRestoreBool(mirrorOrdering, true)()
		defer saveRestoreInt(orderingPrefix, 2)()
		cfg := config.NewConfig()
		if err := applySearchFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Search.Ordering || !cfg.Search.MirrorOrderingBias || cfg.Search.OrderingPrefix != 2 {
			t.Errorf("Search = %+v; want ordering off, mirrored, prefix 2", *cfg.Search)
		}
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		defer saveRestoreString(difficulty, "impossible")()
		err := applySearchFlags(config.NewConfig())
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(aiSide, "white")()
	defer saveRestoreInt(maxPlies, 40)()
	defer saveRestoreInt(repetitionLimit, 0)()
	old := *thinkDelay
	*thinkDelay = 250 * time.Millisecond
	defer func() { *thinkDelay = old }()

	cfg := config.NewConfig()
	if err := applyGameFlags(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Game.AISide != chess.White {
		t.Errorf("AISide = %v; want White", cfg.Game.AISide)
	}
	if cfg.Game.MaxPlies != 40 || cfg.Game.RepetitionLimit != 0 {
		t.Errorf("Game = %+v; want max plies 40, repetition off", *cfg.Game)
	}
	if cfg.Game.ThinkDelay != 250*time.Millisecond {
		t.Errorf("ThinkDelay = %v; want 250ms", cfg.Game.ThinkDelay)
	}
}

func TestApplyGameFlags_BadSide(t *testing.T) {
	defer saveRestoreString(aiSide, "green")()
	if err := applyGameFlags(config.NewConfig()); err == nil {
		t.Error("applyGameFlags() succeeded with -ai green")
	}
}

func TestApplyFlags_Validates(t *testing.T) {
	tests := []struct {
		name string
		set  func() func()
	}{
		{"depth too deep", func() func() { return saveRestoreInt(depth, 20) }},
		{"bad log level", func() func() { return saveRestoreString(logLevel, "loud") }},
		{"bad fen", func() func() { return saveRestoreString(startFEN, "8/8 w") }},
		{"compress without file", func() func() { return saveRestoreBool(compress, true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.set()()
			err := applyFlags(config.NewConfig())
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("applyFlags() error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyOutputAndAnalysisFlags(t *testing.T) {
	defer saveRestoreString(recordFile, "game.pgn.zst")()
	defer saveRestoreString(enginePath, "/usr/bin/stockfish")()
	defer saveRestoreInt(analyseDepth, 8)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)
	if !cfg.Output.ShouldCompress() {
		t.Error("ShouldCompress() = false for .zst record")
	}
	if !cfg.Analysis.Enabled() || cfg.Analysis.Depth != 8 {
		t.Errorf("Analysis = %+v; want enabled at depth 8", *cfg.Analysis)
	}
}

func TestSearchSide(t *testing.T) {
	got, err := searchSide(chess.White)
	if err != nil || got != chess.White {
		t.Errorf("searchSide() = %v, %v; want White", got, err)
	}

	defer saveRestoreString(side, "b")()
	got, err = searchSide(chess.White)
	if err != nil || got != chess.Black {
		t.Errorf("searchSide() with -side b = %v, %v; want Black", got, err)
	}
}
