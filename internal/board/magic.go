package board

// Magic bitboard implementation for sliding piece attacks.
// The multipliers come from magics_generated.go, produced offline by
// cmd/findmagics; nothing here searches for them.

import (
	"errors"
	"fmt"
)

// Table strides: every square owns a fixed-size slot in the flat table.
const (
	rookIndexBits   = 12
	bishopIndexBits = 9

	RookStride   = 1 << rookIndexBits
	BishopStride = 1 << bishopIndexBits
)

var (
	ErrMagicPiece     = errors.New("magic: piece type must be rook or bishop")
	ErrMagicMask      = errors.New("magic: mask does not match relevant occupancy")
	ErrMagicShift     = errors.New("magic: shift does not fit table stride")
	ErrMagicCollision = errors.New("magic: colliding index")
)

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask       Bitboard // Relevant occupancy mask (excludes edges)
	Multiplier uint64   // Magic multiplier
	Shift      uint8    // Bits to shift right
}

// Index hashes the relevant part of occupied into the square's table slot.
func (m *Magic) Index(occupied Bitboard) uint64 {
	return (uint64(occupied&m.Mask) * m.Multiplier) >> m.Shift
}

var (
	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
)

func sliderDirections(pt PieceType) ([4]Direction, int, error) {
	switch pt {
	case Rook:
		return rookDirections, rookIndexBits, nil
	case Bishop:
		return bishopDirections, bishopIndexBits, nil
	}
	return [4]Direction{}, 0, fmt.Errorf("%w: %s", ErrMagicPiece, pt)
}

// SliderMask returns the relevant occupancy mask for a rook or bishop on sq:
// every square along its rays except the last one before the edge.
func SliderMask(pt PieceType, sq Square) Bitboard {
	dirs, _, err := sliderDirections(pt)
	if err != nil {
		return Empty
	}
	var mask Bitboard
	for _, d := range dirs {
		s := sq
		for s.CanStep(d) {
			next := s.Step(d)
			if !next.CanStep(d) {
				break
			}
			mask |= SquareBB(next)
			s = next
		}
	}
	return mask
}

// SlowAttacks computes rook or bishop attacks by ray casting. Each ray
// stops at, and includes, the first occupied square.
func SlowAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	dirs, _, err := sliderDirections(pt)
	if err != nil {
		return Empty
	}
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for s.CanStep(d) {
			s = s.Step(d)
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

// IndexToOccupancy deposits the low bits of index into the set bits of
// mask, lowest square first.
func IndexToOccupancy(mask Bitboard, index int) Bitboard {
	var occ Bitboard
	for i := 0; mask != 0; i++ {
		sq := mask.PopLSB()
		if index&(1<<i) != 0 {
			occ |= SquareBB(sq)
		}
	}
	return occ
}

// SliderTable maps (square, occupancy) to an attack set for one slider type.
type SliderTable struct {
	magics  [64]Magic
	stride  int
	attacks []Bitboard
}

// NewSliderTable fills a flat attack table from a set of magics, checking
// that every entry matches the relevant-occupancy mask, fits the stride and
// never maps two different attack sets to the same index.
func NewSliderTable(pt PieceType, magics *[64]Magic) (*SliderTable, error) {
	_, indexBits, err := sliderDirections(pt)
	if err != nil {
		return nil, err
	}

	t := &SliderTable{
		magics:  *magics,
		stride:  1 << indexBits,
		attacks: make([]Bitboard, 64<<indexBits),
	}

	for sq := A1; sq <= H8; sq++ {
		m := &t.magics[sq]
		if m.Mask != SliderMask(pt, sq) {
			return nil, fmt.Errorf("%w: %s on %s", ErrMagicMask, pt, sq)
		}
		if m.Shift > 63 || 64-int(m.Shift) > indexBits {
			return nil, fmt.Errorf("%w: %s on %s has shift %d", ErrMagicShift, pt, sq, m.Shift)
		}

		base := int(sq) * t.stride
		n := 1 << m.Mask.PopCount()
		for i := 0; i < n; i++ {
			occ := IndexToOccupancy(m.Mask, i)
			attacks := SlowAttacks(pt, sq, occ)
			idx := base + int(m.Index(occ))
			// A slider always attacks at least one square, so zero marks an unused slot.
			if prev := t.attacks[idx]; prev != Empty && prev != attacks {
				return nil, fmt.Errorf("%w: %s on %s, multiplier %#016x", ErrMagicCollision, pt, sq, m.Multiplier)
			}
			t.attacks[idx] = attacks
		}
	}

	return t, nil
}

// Attacks returns the attack set from sq given the board occupancy.
func (t *SliderTable) Attacks(sq Square, occupied Bitboard) Bitboard {
	m := &t.magics[sq]
	return t.attacks[int(sq)*t.stride+int(m.Index(occupied))]
}

// DefaultMagics returns a copy of the compiled magic set for a rook or bishop.
func DefaultMagics(pt PieceType) *[64]Magic {
	var set [64]Magic
	switch pt {
	case Rook:
		set = rookMagics
	case Bishop:
		set = bishopMagics
	default:
		return nil
	}
	return &set
}
