package engine

import (
	"math"

	"github.com/hailam/chessapi/internal/board"
)

// Search constants.
const (
	// MateScore is the score magnitude reported for the side to move
	// being checkmated. Mates found deeper in the tree score slightly
	// closer to zero so the search prefers the shortest one.
	MateScore = 30000

	// Infinity bounds the alpha-beta window. It must exceed any
	// reachable score including mates.
	Infinity = math.MaxInt32

	// MinDepth and MaxDepth bound the requested search depth.
	MinDepth = 1
	MaxDepth = 10
)

// searcher holds the per-search state: the position being searched,
// the transposition table and the node counter.
type searcher struct {
	pos   *board.Position
	tt    *TranspositionTable
	nodes int64
}

// Search runs a fixed-depth alpha-beta search and returns the best
// move. The depth is clamped to [MinDepth, MaxDepth]. pos is mutated
// while searching and restored before returning.
//
// If the side to move has no legal moves, Search returns a
// *NoLegalMoveError together with a result holding the terminal score
// (-MateScore when checkmated, 0 when stalemated).
func (e *Engine) Search(pos *board.Position, depth int) (SearchResult, error) {
	if depth < MinDepth {
		depth = MinDepth
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		inCheck := pos.InCheck()
		score := 0
		if inCheck {
			score = -MateScore
		}
		return SearchResult{Move: board.NoMove, Score: score, Depth: depth},
			&NoLegalMoveError{InCheck: inCheck}
	}

	s := &searcher{pos: pos, tt: e.tt}
	orderMoves(moves)

	bestMove := board.NoMove
	bestScore := -Infinity

	// Every root move gets the full window, so root move ordering can
	// never prune away the true best move.
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.MakeMove(m)
		score := -s.alphaBeta(depth-1, -Infinity, Infinity)
		pos.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	return SearchResult{
		Move:  bestMove,
		Score: bestScore,
		Nodes: s.nodes,
		Depth: depth,
		PV:    e.principalVariation(pos, bestMove, depth),
	}, nil
}

// alphaBeta searches to the given remaining depth inside the
// (alpha, beta) window and returns the score from the side to move's
// perspective.
func (s *searcher) alphaBeta(depth, alpha, beta int) int {
	s.nodes++

	hash := s.pos.Hash
	if entry, ok := s.tt.Probe(hash); ok && entry.Depth >= depth {
		switch {
		case entry.Flag == TTExact:
			return entry.Score
		case entry.Flag == TTLowerBound && entry.Score >= beta:
			return entry.Score
		case entry.Flag == TTUpperBound && entry.Score <= alpha:
			return entry.Score
		}
	}

	if depth == 0 {
		return s.quiescence(alpha, beta)
	}

	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if s.pos.InCheck() {
			// Shallower mates score higher than deeper ones.
			return -MateScore + (MaxDepth - depth)
		}
		return 0
	}

	orderMoves(moves)

	bestScore := -Infinity
	bestMove := board.NoMove
	flag := TTUpperBound

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := s.pos.MakeMove(m)
		score := -s.alphaBeta(depth-1, -beta, -alpha)
		s.pos.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				flag = TTExact
			}
			if alpha >= beta {
				flag = TTLowerBound
				break
			}
		}
	}

	s.tt.Store(hash, depth, bestScore, flag, bestMove)

	return bestScore
}

// quiescence searches captures only, with the static evaluation as a
// stand pat floor for the side to move.
func (s *searcher) quiescence(alpha, beta int) int {
	standPat := Evaluate(s.pos)

	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	captures := s.pos.GenerateCaptures()
	orderMoves(captures)

	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		undo := s.pos.MakeMove(m)
		score := -s.quiescence(-beta, -alpha)
		s.pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// principalVariation reconstructs the expected line by following the
// best moves recorded in the transposition table, validating each one
// against the legal moves of the successive positions.
func (e *Engine) principalVariation(pos *board.Position, first board.Move, depth int) []string {
	if first == board.NoMove {
		return nil
	}

	pv := []string{first.String()}

	p := pos.Copy()
	p.MakeMove(first)

	for len(pv) < depth {
		entry, ok := e.tt.Probe(p.Hash)
		if !ok || entry.Best == board.NoMove {
			break
		}
		m, err := p.FindMove(entry.Best.From, entry.Best.To, entry.Best.Promo)
		if err != nil {
			break
		}
		pv = append(pv, m.String())
		p.MakeMove(m)
	}

	return pv
}
