package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position. All six fields
// are required; any defect is reported as a *MalformedFENError.
func ParseFEN(fen string) (*Position, error) {
	fail := func(format string, args ...any) (*Position, error) {
		return nil, &MalformedFENError{FEN: fen, Reason: fmt.Sprintf(format, args...)}
	}

	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return fail("need 6 fields, got %d", len(parts))
	}

	pos := &Position{EPFile: NoEPFile}

	// Piece placement (field 0)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return fail("%v", err)
	}

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return fail("invalid side to move: %s", parts[1])
	}

	// Castling rights (field 2)
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return fail("%v", err)
	}

	// En passant target (field 3); only the file is retained.
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return fail("invalid en passant square: %s", parts[3])
		}
		wantRow := 2
		if pos.SideToMove == Black {
			wantRow = 5
		}
		if sq.Row() != wantRow {
			return fail("en passant square %s on wrong rank for side to move", sq)
		}
		pos.EPFile = int8(sq.File())
	}

	// Half-move clock (field 4)
	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return fail("invalid half-move clock: %s", parts[4])
	}
	pos.HalfMoveClock = hmc

	// Full-move number (field 5)
	fmn, err := strconv.Atoi(parts[5])
	if err != nil || fmn < 1 {
		return fail("invalid full-move number: %s", parts[5])
	}
	pos.FullMoveNumber = fmn

	if err := pos.Validate(); err != nil {
		return fail("%v", err)
	}

	pos.Hash = pos.ComputeHash()

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("need 8 ranks, got %d", len(rows))
	}

	for row, rowStr := range rows {
		file := 0

		for i := 0; i < len(rowStr); i++ {
			c := rowStr[i]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-row)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(c)
				if piece == Empty {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				pos.Board[SquareAt(row, file)] = piece
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("rank %d has %d squares, want 8", 8-row, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}

	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling character: %c", castling[i])
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// Piece placement, rank 8 first
	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board[SquareAt(row, file)]
			if piece == Empty {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	// En passant target
	sb.WriteByte(' ')
	if ep, ok := p.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
