package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrFieldCount = errors.New("need exactly 6 fields")
	ErrRankCount  = errors.New("need exactly 8 ranks")
	ErrPieceChar  = errors.New("unknown piece character")
	ErrRankWidth  = errors.New("rank does not cover 8 files")
	ErrSideToMove = errors.New("side to move must be w or b")
	ErrCastling   = errors.New("invalid castling rights")
	ErrEnPassant  = errors.New("invalid en passant square")
	ErrNumber     = errors.New("invalid move counter")
	ErrKingCount  = errors.New("wrong number of kings")
)

// FENError reports which FEN field could not be parsed.
type FENError struct {
	Field string
	Value string
	Err   error
}

func (e *FENError) Error() string {
	return fmt.Sprintf("invalid FEN %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FENError) Unwrap() error {
	return e.Err
}

// ParseFEN parses a FEN string and returns a Position.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &FENError{Field: "record", Value: fen, Err: fmt.Errorf("%w, got %d", ErrFieldCount, len(parts))}
	}

	pos := NewEmptyPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, &FENError{Field: "piece placement", Value: parts[0], Err: err}
	}

	switch parts[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, &FENError{Field: "side to move", Value: parts[1], Err: ErrSideToMove}
	}

	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, &FENError{Field: "castling", Value: parts[2], Err: err}
	}
	pos.castlingRights = cr

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
			return nil, &FENError{Field: "en passant", Value: parts[3], Err: ErrEnPassant}
		}
		pos.enPassant = sq
	}

	if pos.halfMoveClock, err = parseCounter(parts[4]); err != nil {
		return nil, &FENError{Field: "half-move clock", Value: parts[4], Err: err}
	}
	if pos.fullMoveNumber, err = parseCounter(parts[5]); err != nil {
		return nil, &FENError{Field: "full-move number", Value: parts[5], Err: err}
	}

	pos.RecomputeOccupancy()

	// A color may have no king. King queries must not be run for it.
	for c := White; c <= Black; c++ {
		if n := pos.pieces[c][King].PopCount(); n > 1 {
			return nil, &FENError{Field: "piece placement", Value: parts[0], Err: fmt.Errorf("%w: %s has %d", ErrKingCount, c, n)}
		}
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w, got %d", ErrRankCount, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return fmt.Errorf("%w: %q", ErrPieceChar, c)
				}
				if file > 7 {
					return fmt.Errorf("%w: rank %d overflows", ErrRankWidth, rank+1)
				}
				pos.PutPiece(piece, NewSquare(file, rank))
				file++
			}
			if file > 8 {
				return fmt.Errorf("%w: rank %d overflows", ErrRankWidth, rank+1)
			}
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d", ErrRankWidth, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for _, c := range castling {
		switch c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: %q", ErrCastling, c)
		}
	}

	return cr, nil
}

// parseCounter accepts plain decimal digits only, no sign.
func parseCounter(s string) (int, error) {
	if s == "" {
		return 0, ErrNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrNumber
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNumber
	}
	return n, nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceOn(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))

	return sb.String()
}
