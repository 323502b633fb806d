// Package hashing provides Zobrist position hashes, repetition tracking for
// real games and duplicate detection across self-play games.
package hashing

import "github.com/lgbarn/chess-ai-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

var (
	pieceKeys   [chess.NumColours][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	state := zobristSeed
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitMix64(&state)
			}
		}
	}
	blackToMove = splitMix64(&state)
}

// splitMix64 advances state and returns the next pseudo-random value.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the occupancy of the board and the side to
// move. Piece identities, capture stacks and pawn-moved markers are not
// part of the hash: two boards with the same pieces on the same squares
// hash equal.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for col := 0; col < chess.BoardSize; col++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p, ok := board.PieceAt(chess.Sq(col, rank))
			if !ok {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind][rank*chess.BoardSize+col]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}
