package board

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-15: MoveType
type Move uint16

// MoveType tags what a move does. Bit 2 marks a promotion, bit 3 a capture;
// for promotions the low two bits select the piece (0=Knight ... 3=Queen).
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	Capture
	EnPassant
	_
	_
	KnightPromotionCapture
	BishopPromotionCapture
	RookPromotionCapture
	QueenPromotionCapture
)

const (
	capturedBit  MoveType = 8
	promotionBit MoveType = 4
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove packs a move. from and to must differ.
func NewMove(from, to Square, mt MoveType) Move {
	return Move(from) | Move(to)<<6 | Move(mt&0xF)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Type returns the move type tag.
func (m Move) Type() MoveType {
	return MoveType(m >> 12)
}

// IsCapture returns true if the move removes an enemy piece, en passant included.
func (m Move) IsCapture() bool {
	return m.Type()&capturedBit != 0
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Type()&promotionBit != 0
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	t := m.Type()
	return t == KingCastle || t == QueenCastle
}

// PromotionType returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) PromotionType() PieceType {
	return PieceType(m.Type()&3) + Knight
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		s += string(m.PromotionType().Char())
	}

	return s
}
