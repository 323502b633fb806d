package game

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// Status is the state of a game after a real move.
type Status int

const (
	InProgress Status = iota
	KingCaptured
	Checkmate
	Stalemate
	Repetition
	PlyLimit
	// NoMove means the AI had no candidate move.
	NoMove
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case KingCaptured:
		return "king captured"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case PlyLimit:
		return "ply limit"
	case NoMove:
		return "no move"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s != InProgress
}

// Report describes the position after a real move.
type Report struct {
	Status    Status
	Winner    chess.Colour
	HasWinner bool

	// InCheck is set when the side to move is in check.
	InCheck bool
	// KingTargeted is set when the side that just moved attacks the enemy
	// king. It is a prompt only and says nothing about escape.
	KingTargeted bool
}

// Result returns the PGN result string.
func (r Report) Result() string {
	switch {
	case !r.Status.Over():
		return "*"
	case !r.HasWinner:
		return "1/2-1/2"
	case r.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

func (r Report) String() string {
	if r.HasWinner {
		return fmt.Sprintf("%s, %s wins", r.Status, r.Winner)
	}
	return r.Status.String()
}

// evaluateStatus inspects the board after mover's real move.
func (g *Game) evaluateStatus(mover chess.Colour, kingCaptured bool) Report {
	toMove := mover.Opposite()
	rep := Report{
		InCheck:      engine.IsInCheck(g.board, toMove),
		KingTargeted: engine.KingTargeted(g.board, mover),
	}

	hash := hashing.GenerateZobristHash(g.board, toMove)
	g.reps.Push(hash)

	switch {
	case kingCaptured:
		rep.Status, rep.Winner, rep.HasWinner = KingCaptured, mover, true
	case engine.IsCheckmate(g.board, toMove):
		rep.Status, rep.Winner, rep.HasWinner = Checkmate, mover, true
	case engine.IsStalemate(g.board, toMove):
		rep.Status = Stalemate
	case g.reps.IsRepetition(hash):
		rep.Status = Repetition
	case g.maxPlies > 0 && g.ply >= g.maxPlies:
		rep.Status = PlyLimit
	}
	return rep
}
