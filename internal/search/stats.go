package search

import "fmt"

// Stats counts the work done by one top-level search.
type Stats struct {
	// Nodes is every position visited, leaves included.
	Nodes int
	// Leaves is the number of depth-0 evaluations.
	Leaves int
	// Cutoffs is the number of times the remaining moves of a node were
	// skipped because beta <= alpha.
	Cutoffs int
	// OrderingEvals is the number of evaluations spent ranking moves.
	OrderingEvals int
}

// Evaluations is the total number of static evaluations.
func (s Stats) Evaluations() int {
	return s.Leaves + s.OrderingEvals
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d cutoffs=%d ordering-evals=%d",
		s.Nodes, s.Leaves, s.Cutoffs, s.OrderingEvals)
}
