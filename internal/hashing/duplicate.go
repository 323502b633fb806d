package hashing

// DuplicateDetector tracks the final positions of finished games so that
// repeated self-play games can be reported.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same game length
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	// count is the number of stored signatures
	count int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of half-moves in the game
	Plies int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the capacity is reached new
// signatures are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}
