package engine

import (
	"testing"

	"github.com/hailam/chessapi/internal/board"
)

func TestTranspositionTable(t *testing.T) {
	tt := NewTranspositionTable()

	if _, ok := tt.Probe(0xDEAD); ok {
		t.Error("Probe hit on empty table")
	}

	best := board.Move{From: board.E2, To: board.E4, Piece: board.WhitePawn}
	tt.Store(0xDEAD, 4, 120, TTExact, best)

	entry, ok := tt.Probe(0xDEAD)
	if !ok {
		t.Fatal("Probe missed after Store")
	}
	if entry.Depth != 4 || entry.Score != 120 || entry.Flag != TTExact || entry.Best != best {
		t.Errorf("entry = %+v", entry)
	}

	// Same hash replaces.
	tt.Store(0xDEAD, 6, -40, TTLowerBound, board.NoMove)
	entry, _ = tt.Probe(0xDEAD)
	if entry.Depth != 6 || entry.Score != -40 || entry.Flag != TTLowerBound {
		t.Errorf("entry after replace = %+v", entry)
	}

	if tt.Len() != 1 {
		t.Errorf("Len = %d, want 1", tt.Len())
	}

	tt.Clear()
	if tt.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", tt.Len())
	}
}

func TestPerft(t *testing.T) {
	pos := board.NewPosition()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		if got := Perft(pos, tc.depth); got != tc.expected {
			t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	lines, total := Divide(pos, 2)
	if len(lines) != 48 {
		t.Errorf("Divide returned %d root moves, want 48", len(lines))
	}
	if total != 2039 {
		t.Errorf("Divide total = %d, want 2039", total)
	}

	var sum uint64
	for _, line := range lines {
		sum += line.Nodes
	}
	if sum != total {
		t.Errorf("line sum %d != total %d", sum, total)
	}
}
