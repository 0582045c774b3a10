package board

// Square-pair geometry, indexed [from][to].
var (
	lineBB        [64][64]Bitboard // Full line through both squares
	betweenBB     [64][64]Bitboard // Squares strictly between
	betweenOrToBB [64][64]Bitboard // betweenBB plus the far square
	rayPassBB     [64][64]Bitboard // Ray from the first square through the second to the edge
)

// initGeometry derives the pair tables from the slider tables, which must
// already be built.
func initGeometry() {
	for from := A1; from <= H8; from++ {
		fromBB := SquareBB(from)
		orthogonal := RookAttacks(from, Empty)
		diagonal := BishopAttacks(from, Empty)

		for to := A1; to <= H8; to++ {
			toBB := SquareBB(to)

			var line, between, rayPass Bitboard
			switch {
			case orthogonal&toBB != 0:
				line = (orthogonal & RookAttacks(to, Empty)) | fromBB | toBB
				between = RookAttacks(from, toBB) & RookAttacks(to, fromBB)
				rayPass = orthogonal & (RookAttacks(to, fromBB) | toBB)
			case diagonal&toBB != 0:
				line = (diagonal & BishopAttacks(to, Empty)) | fromBB | toBB
				between = BishopAttacks(from, toBB) & BishopAttacks(to, fromBB)
				rayPass = diagonal & (BishopAttacks(to, fromBB) | toBB)
			}

			lineBB[from][to] = line
			betweenBB[from][to] = between
			betweenOrToBB[from][to] = between | toBB
			rayPassBB[from][to] = rayPass
		}
	}
}

// Line returns the bitboard of the full line through two squares.
// Returns empty if squares are not aligned.
func Line(sq1, sq2 Square) Bitboard {
	return lineBB[sq1][sq2]
}

// Between returns the bitboard of squares strictly between two squares.
// Returns empty if squares are not aligned (not on same rank, file, or diagonal).
func Between(sq1, sq2 Square) Bitboard {
	return betweenBB[sq1][sq2]
}

// BetweenOrTo returns Between(sq1, sq2) plus sq2 itself.
func BetweenOrTo(sq1, sq2 Square) Bitboard {
	return betweenOrToBB[sq1][sq2]
}

// RayPass returns the ray leaving sq1, passing through sq2 and running on
// to the board edge. Returns empty if squares are not aligned.
func RayPass(sq1, sq2 Square) Bitboard {
	return rayPassBB[sq1][sq2]
}

// Aligned returns true if three squares are on the same line.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineBB[sq1][sq2]&SquareBB(sq3) != 0
}
