package board

// Pre-computed attack tables for non-sliding pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

// offset is a (rank, file) displacement applied by a leaper.
type offset struct {
	dr, df int
}

var (
	knightOffsets = []offset{
		{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-2, 1}, {-2, -1}, {-1, 2}, {-1, -2},
	}
	kingOffsets = []offset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	pawnOffsets = [2][]offset{
		White: {{1, 1}, {1, -1}},
		Black: {{-1, 1}, {-1, -1}},
	}
)

// leaperAttacks applies each offset from every square, dropping targets
// that leave the board.
func leaperAttacks(offsets []offset) [64]Bitboard {
	var table [64]Bitboard
	for sq := A1; sq <= H8; sq++ {
		var attacks Bitboard
		for _, o := range offsets {
			f, r := sq.File()+o.df, sq.Rank()+o.dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			attacks |= SquareBB(NewSquare(f, r))
		}
		table[sq] = attacks
	}
	return table
}

func initLeaperAttacks() {
	knightAttacks = leaperAttacks(knightOffsets)
	kingAttacks = leaperAttacks(kingOffsets)
	pawnAttacks[White] = leaperAttacks(pawnOffsets[White])
	pawnAttacks[Black] = leaperAttacks(pawnOffsets[Black])
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopTable.Attacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rookTable.Attacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopTable.Attacks(sq, occupied) | rookTable.Attacks(sq, occupied)
}
