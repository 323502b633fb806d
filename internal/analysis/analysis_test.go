package analysis

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/logx"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		toMove chess.Colour
		want   int
	}{
		{"white to move, white better", 120, chess.White, -120},
		{"white to move, black better", -45, chess.White, 45},
		{"black to move, black better", 300, chess.Black, 300},
		{"black to move, white better", -80, chess.Black, -80},
		{"level", 0, chess.White, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.score, tt.toMove); got != tt.want {
				t.Errorf("Normalize(%d, %v) = %d; want %d", tt.score, tt.toMove, got, tt.want)
			}
		})
	}
}

func TestScoreString(t *testing.T) {
	tests := []struct {
		s    Score
		want string
	}{
		{Score{Value: -35, Depth: 12}, "cp -35 (depth 12)"},
		{Score{Value: 3, Mate: true, Depth: 20}, "mate 3 (depth 20)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestNew_RequiresEngine(t *testing.T) {
	cfg := config.NewAnalysisConfig()
	if _, err := New(cfg, logx.Nop()); !errors.Is(err, chesserrors.ErrEngineUnavailable) {
		t.Errorf("New() without path error = %v; want ErrEngineUnavailable", err)
	}

	cfg.EnginePath = "/nonexistent/stockfish-binary"
	if _, err := New(cfg, logx.Nop()); !errors.Is(err, chesserrors.ErrEngineUnavailable) {
		t.Errorf("New() with missing binary error = %v; want ErrEngineUnavailable", err)
	}
}
