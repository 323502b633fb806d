package hashing

// RepetitionTracker counts how often each position has occurred in a real
// game. Positions are pushed after every real move and popped on take-back.
type RepetitionTracker struct {
	counts  map[uint64]int
	history []uint64
	limit   int
}

// NewRepetitionTracker creates a tracker that reports a repetition once a
// position has occurred limit times. A limit below 2 disables detection.
func NewRepetitionTracker(limit int) *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[uint64]int),
		limit:  limit,
	}
}

// Push records an occurrence of hash and returns its new count.
func (r *RepetitionTracker) Push(hash uint64) int {
	r.history = append(r.history, hash)
	r.counts[hash]++
	return r.counts[hash]
}

// Pop removes the most recent occurrence. It is a no-op on an empty
// history.
func (r *RepetitionTracker) Pop() {
	if len(r.history) == 0 {
		return
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	if r.counts[last]--; r.counts[last] == 0 {
		delete(r.counts, last)
	}
}

// Count returns how often hash has occurred.
func (r *RepetitionTracker) Count(hash uint64) int {
	return r.counts[hash]
}

// IsRepetition reports whether hash has reached the limit.
func (r *RepetitionTracker) IsRepetition(hash uint64) bool {
	return r.limit >= 2 && r.counts[hash] >= r.limit
}
