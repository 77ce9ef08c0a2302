package engine

import (
	"github.com/hailam/chessapi/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry is one transposition table entry. Score obeys the bound in
// Flag at the stored Depth; Best is the move that produced the score,
// kept for principal variation reconstruction.
type TTEntry struct {
	Depth int
	Score int
	Flag  TTFlag
	Best  board.Move
}

// TranspositionTable caches search results keyed by Zobrist hash. It is
// a plain map with last-write-wins replacement and lives as long as the
// Engine that owns it. It is not safe for concurrent use; every search
// owns its table exclusively.
type TranspositionTable struct {
	entries map[uint64]TTEntry
}

// NewTranspositionTable creates an empty transposition table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{
		entries: make(map[uint64]TTEntry),
	}
}

// Probe looks up a position hash. The second return value reports
// whether an entry was found.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	entry, ok := tt.entries[hash]
	return entry, ok
}

// Store saves a search result, replacing any previous entry for the
// same hash.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, flag TTFlag, best board.Move) {
	tt.entries[hash] = TTEntry{
		Depth: depth,
		Score: score,
		Flag:  flag,
		Best:  best,
	}
}

// Len returns the number of stored entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

// Clear drops every entry.
func (tt *TranspositionTable) Clear() {
	clear(tt.entries)
}
