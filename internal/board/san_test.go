package board

import (
	"testing"
)

func mustMove(t *testing.T, pos *Position, uci string) Move {
	t.Helper()
	from, to, promo, err := ParseUCIMove(uci)
	if err != nil {
		t.Fatalf("Failed to parse move %q: %v", uci, err)
	}
	m, err := pos.FindMove(from, to, promo)
	if err != nil {
		t.Fatalf("FindMove(%s): %v", uci, err)
	}
	return m
}

func TestToSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", StartFEN, "e2e4", "e4"},
		{"knight development", StartFEN, "g1f3", "Nf3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"promotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8q", "a8=Q"},
		{"underpromotion", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8n", "a8=N"},
		{"check", "rnbqkbnr/ppppp1pp/8/5p2/4P3/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 2", "d1h5", "Qh5+"},
		{"checkmate", "6k1/8/6K1/8/8/8/8/R7 w - - 0 1", "a1a8", "Ra8#"},
		{"en passant", "rnbqkbnr/pp1pp1pp/2p5/4Pp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5f6", "exf6"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			m := mustMove(t, pos, tc.uci)
			if got := m.ToSAN(pos); got != tc.want {
				t.Errorf("ToSAN(%s) = %q, want %q", tc.uci, got, tc.want)
			}
		})
	}
}

func TestSANDisambiguation(t *testing.T) {
	// Three queens can all reach d1: one needs the file, one the rank,
	// one the full origin square.
	fen := "8/7k/8/8/Q2Q4/8/8/Q3K3 w - - 0 1"

	tests := []struct {
		uci  string
		want string
	}{
		{"d4d1", "Qdd1"},
		{"a1d1", "Q1d1"},
		{"a4d1", "Qa4d1"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			m := mustMove(t, pos, tc.uci)
			if got := m.ToSAN(pos); got != tc.want {
				t.Errorf("ToSAN(%s) = %q, want %q", tc.uci, got, tc.want)
			}
		})
	}
}

func TestSANKnightRankDisambiguation(t *testing.T) {
	// Knights on e2 and e4 share a file, so the rank disambiguates.
	pos, err := ParseFEN("7k/8/8/8/4N3/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	m := mustMove(t, pos, "e4c3")
	if got := m.ToSAN(pos); got != "N4c3" {
		t.Errorf("ToSAN(e4c3) = %q, want %q", got, "N4c3")
	}
}

func TestMovesToSAN(t *testing.T) {
	pos := NewPosition()

	var moves []Move
	p := pos.Copy()
	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		m := mustMove(t, p, uci)
		moves = append(moves, m)
		p.MakeMove(m)
	}

	got := MovesToSAN(pos, moves)
	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	if len(got) != len(want) {
		t.Fatalf("MovesToSAN returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %q, want %q", i, got[i], want[i])
		}
	}
}
