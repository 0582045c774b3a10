package board

// Check and pin detection. Every query looks from the target square outwards:
// a piece of type T attacks sq exactly when a T standing on sq would attack it.

// Checkers returns the enemy pieces giving check to side's king.
func Checkers(pos *Position, side Color) Bitboard {
	them := side.Other()
	ksq := pos.kingSq[side]
	occupied := pos.all

	return (pawnAttacks[side][ksq] & pos.pieces[them][Pawn]) |
		(knightAttacks[ksq] & pos.pieces[them][Knight]) |
		(BishopAttacks(ksq, occupied) & (pos.pieces[them][Bishop] | pos.pieces[them][Queen])) |
		(RookAttacks(ksq, occupied) & (pos.pieces[them][Rook] | pos.pieces[them][Queen]))
}

// AttackersTo returns the pieces of color by attacking sq.
func AttackersTo(pos *Position, sq Square, by Color) Bitboard {
	occupied := pos.all
	return (pawnAttacks[by.Other()][sq] & pos.pieces[by][Pawn]) |
		(knightAttacks[sq] & pos.pieces[by][Knight]) |
		(kingAttacks[sq] & pos.pieces[by][King]) |
		(BishopAttacks(sq, occupied) & (pos.pieces[by][Bishop] | pos.pieces[by][Queen])) |
		(RookAttacks(sq, occupied) & (pos.pieces[by][Rook] | pos.pieces[by][Queen]))
}

// IsSquareAttacked returns true if sq is attacked by any piece of color by.
func IsSquareAttacked(pos *Position, sq Square, by Color) bool {
	occupied := pos.all

	if pawnAttacks[by.Other()][sq]&pos.pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&pos.pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&pos.pieces[by][King] != 0 {
		return true
	}
	if BishopAttacks(sq, occupied)&(pos.pieces[by][Bishop]|pos.pieces[by][Queen]) != 0 {
		return true
	}
	return RookAttacks(sq, occupied)&(pos.pieces[by][Rook]|pos.pieces[by][Queen]) != 0
}

// PinsInfo describes the pieces pinned against one king.
type PinsInfo struct {
	Pinned Bitboard
	rays   [64]Bitboard
}

// PinRay returns the squares the piece on sq may move to without exposing
// its king: the segment towards the pinner, pinner included. Unpinned
// squares get Universe.
func (pi *PinsInfo) PinRay(sq Square) Bitboard {
	return pi.rays[sq]
}

// slidesAlong reports whether a piece of type pt attacks along d.
func slidesAlong(pt PieceType, d Direction) bool {
	if d.IsDiagonal() {
		return pt == Bishop || pt == Queen
	}
	return pt == Rook || pt == Queen
}

// ComputePins walks the eight rays from side's king. A friendly piece
// followed by an enemy slider moving along that ray is pinned; anything else
// ends the ray. An enemy slider met first is a check, left to Checkers.
func ComputePins(pos *Position, side Color) PinsInfo {
	var pins PinsInfo
	for i := range pins.rays {
		pins.rays[i] = Universe
	}

	ksq := pos.kingSq[side]

	for _, d := range Directions {
		candidate := NoSquare
		for s := ksq; s.CanStep(d); {
			s = s.Step(d)
			piece := pos.mailbox[s]
			if piece == NoPiece {
				continue
			}

			if candidate == NoSquare {
				if piece.Color() != side {
					break
				}
				candidate = s
				continue
			}

			if piece.Color() != side && slidesAlong(piece.Type(), d) {
				pins.Pinned |= SquareBB(candidate)
				pins.rays[candidate] = betweenOrToBB[ksq][s] &^ SquareBB(candidate)
			}
			break
		}
	}

	return pins
}
