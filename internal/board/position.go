package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position.
//
// The piece bitboards are the source of truth. Occupancy, the mailbox and the
// king squares are derived; after PutPiece or RemovePiece the caller must
// call RecomputeOccupancy before running any attack query.
type Position struct {
	pieces   [2][6]Bitboard // [Color][PieceType]
	mailbox  [64]Piece
	occupied [2]Bitboard
	all      Bitboard
	kingSq   [2]Square

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square // Target square for en passant, NoSquare if none
	halfMoveClock  int    // Moves since last pawn move or capture (for 50-move rule)
	fullMoveNumber int    // Full move counter, starts at 1
}

// NewEmptyPosition returns a position with no pieces, white to move.
func NewEmptyPosition() *Position {
	p := &Position{}
	p.Clear()
	return p
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{
		enPassant:      NoSquare,
		fullMoveNumber: 1,
	}
	for sq := range p.mailbox {
		p.mailbox[sq] = NoPiece
	}
	p.kingSq[White] = NoSquare
	p.kingSq[Black] = NoSquare
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Pieces returns the bitboard of pieces of type pt and color c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// PieceOn returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.mailbox[sq]
}

// Occupancy returns every occupied square.
func (p *Position) Occupancy() Bitboard {
	return p.all
}

// ColorOccupancy returns the squares occupied by color c.
func (p *Position) ColorOccupancy(c Color) Bitboard {
	return p.occupied[c]
}

// KingSquare returns the king square of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSq[c]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassant returns the en passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

func (p *Position) SetSideToMove(c Color) {
	p.sideToMove = c
}

func (p *Position) SetCastlingRights(cr CastlingRights) {
	p.castlingRights = cr
}

func (p *Position) SetEnPassant(sq Square) {
	p.enPassant = sq
}

// SetClocks sets the half-move clock and full-move number.
func (p *Position) SetClocks(halfMove, fullMove int) {
	p.halfMoveClock = halfMove
	p.fullMoveNumber = fullMove
}

// PutPiece places a piece on sq, replacing whatever stood there. Occupancy
// is not updated.
func (p *Position) PutPiece(piece Piece, sq Square) {
	p.RemovePiece(sq)
	if piece == NoPiece {
		return
	}
	p.pieces[piece.Color()][piece.Type()] |= SquareBB(sq)
	p.mailbox[sq] = piece
}

// RemovePiece empties a square and returns what stood there. Occupancy is
// not updated.
func (p *Position) RemovePiece(sq Square) Piece {
	piece := p.mailbox[sq]
	if piece == NoPiece {
		return NoPiece
	}
	p.pieces[piece.Color()][piece.Type()] &^= SquareBB(sq)
	p.mailbox[sq] = NoPiece
	return piece
}

// RecomputeOccupancy rebuilds the per-color and combined occupancy and the
// king squares from the piece bitboards.
func (p *Position) RecomputeOccupancy() {
	p.occupied[White] = Empty
	p.occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.occupied[White] |= p.pieces[White][pt]
		p.occupied[Black] |= p.pieces[Black][pt]
	}

	p.all = p.occupied[White] | p.occupied[Black]

	for c := White; c <= Black; c++ {
		p.kingSq[c] = NoSquare
		if kings := p.pieces[c][King]; kings != 0 {
			p.kingSq[c] = kings.LSB()
		}
	}
}

// Validate checks the structural invariants of the position.
func (p *Position) Validate() error {
	var union Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			if union&bb != 0 {
				return fmt.Errorf("%s %s bitboard overlaps another piece", c, pt)
			}
			union |= bb
		}
	}
	if union != p.all {
		return fmt.Errorf("occupancy %#016x does not match pieces %#016x", uint64(p.all), uint64(union))
	}

	for sq := A1; sq <= H8; sq++ {
		piece := p.mailbox[sq]
		if piece == NoPiece {
			if union.IsSet(sq) {
				return fmt.Errorf("mailbox empty on occupied square %s", sq)
			}
			continue
		}
		if !p.pieces[piece.Color()][piece.Type()].IsSet(sq) {
			return fmt.Errorf("mailbox has %s on %s but bitboard does not", piece, sq)
		}
	}

	for c := White; c <= Black; c++ {
		if p.pieces[c][King].PopCount() != 1 {
			return fmt.Errorf("%w: %s has %d", ErrKingCount, c, p.pieces[c][King].PopCount())
		}
	}

	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceOn(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.fullMoveNumber)
	return sb.String()
}
