package board

// Zobrist hash keys for position hashing.
// Generated by a PRNG with a fixed seed so hashes are reproducible
// across runs and platforms.
var (
	zobristPiece      [13][64]uint64 // [piece code + 6][square]; index 6 (empty) stays zero
	zobristEnPassant  [8]uint64      // one per file
	zobristCastling   [4]uint64      // one per castling right
	zobristSideToMove uint64         // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x9E3779B97F4A7C15) // Fixed seed

	// Piece keys for the 12 real piece codes; the empty slot keeps its
	// zero value so empty squares contribute nothing to the hash.
	for code := -6; code <= 6; code++ {
		if code == 0 {
			continue
		}
		for sq := 0; sq < 64; sq++ {
			zobristPiece[code+6][sq] = rng.next()
		}
	}

	// En passant keys (one per file)
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	// Castling keys (one per independent right)
	for i := 0; i < 4; i++ {
		zobristCastling[i] = rng.next()
	}

	// Side to move key
	zobristSideToMove = rng.next()
}

// ComputeHash computes the Zobrist hash for the position from scratch:
// the XOR of the keys for every piece on its square, the side-to-move
// key when black is to move, one key per castling right held, and the
// en passant file key when a target exists.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for sq := A8; sq <= H1; sq++ {
		if piece := p.Board[sq]; piece != Empty {
			hash ^= zobristPiece[piece+6][sq]
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	if p.CastlingRights&WhiteKingSideCastle != 0 {
		hash ^= zobristCastling[0]
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		hash ^= zobristCastling[1]
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		hash ^= zobristCastling[2]
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		hash ^= zobristCastling[3]
	}

	if p.EPFile != NoEPFile {
		hash ^= zobristEnPassant[p.EPFile]
	}

	return hash
}
