// Package magicsearch finds magic multipliers for the slider tables by
// randomized trial. It runs offline, from cmd/findmagics; the board package
// only ever consumes the constants it produces.
package magicsearch

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"runtime"

	"github.com/hailam/chesscore/internal/board"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// ErrBudgetExhausted is returned when no multiplier was found within the
// attempt budget for a square.
var ErrBudgetExhausted = errors.New("magicsearch: attempt budget exhausted")

// DefaultBudget is the number of candidates tried per square before giving up.
const DefaultBudget = 100_000_000

// Candidates leaving fewer bits than this in the top byte of mask*multiplier
// are skipped without verification.
const minTopBits = 6

// Searcher draws candidate multipliers from a seeded generator.
type Searcher struct {
	rng    *rand.Rand
	budget int
}

// NewSearcher returns a searcher trying at most budget candidates per square.
func NewSearcher(seed uint64, budget int) *Searcher {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Searcher{
		rng:    rand.New(rand.NewSource(seed)),
		budget: budget,
	}
}

// sparse returns a random value with roughly an eighth of its bits set.
func (s *Searcher) sparse() uint64 {
	return s.rng.Uint64() & s.rng.Uint64() & s.rng.Uint64()
}

// Find searches for a collision-free magic for a rook or bishop on sq. The
// shift is 64 minus the number of relevant squares, so the index is as
// narrow as the mask allows.
func (s *Searcher) Find(ctx context.Context, pt board.PieceType, sq board.Square) (board.Magic, error) {
	if pt != board.Rook && pt != board.Bishop {
		return board.Magic{}, fmt.Errorf("%w: %s", board.ErrMagicPiece, pt)
	}

	mask := board.SliderMask(pt, sq)
	relevant := mask.PopCount()
	n := 1 << relevant

	occs := make([]board.Bitboard, n)
	atts := make([]board.Bitboard, n)
	for i := range occs {
		occs[i] = board.IndexToOccupancy(mask, i)
		atts[i] = board.SlowAttacks(pt, sq, occs[i])
	}

	// used[idx] is valid only when epoch[idx] equals the current attempt,
	// which saves clearing the table between candidates.
	used := make([]board.Bitboard, n)
	epoch := make([]int, n)

	for attempt := 1; attempt <= s.budget; attempt++ {
		if attempt&0xFFFF == 1 {
			if err := ctx.Err(); err != nil {
				return board.Magic{}, err
			}
		}

		m := board.Magic{
			Mask:       mask,
			Multiplier: s.sparse(),
			Shift:      uint8(64 - relevant),
		}
		if bits.OnesCount64((uint64(mask)*m.Multiplier)&0xFF00000000000000) < minTopBits {
			continue
		}

		ok := true
		for i, occ := range occs {
			idx := m.Index(occ)
			if epoch[idx] != attempt {
				epoch[idx] = attempt
				used[idx] = atts[i]
			} else if used[idx] != atts[i] {
				ok = false
				break
			}
		}
		if ok {
			return m, nil
		}
	}

	return board.Magic{}, fmt.Errorf("%w: %s on %s after %d candidates", ErrBudgetExhausted, pt, sq, s.budget)
}

// squareSeed derives the seed for one square's searcher.
func squareSeed(seed uint64, sq board.Square) uint64 {
	return seed ^ (uint64(sq)+1)*0x9E3779B97F4A7C15
}

// FindAll searches all 64 squares in parallel. The result is the same for a
// given seed and budget regardless of how the work is scheduled.
func FindAll(ctx context.Context, pt board.PieceType, seed uint64, budget int) (*[64]board.Magic, error) {
	var set [64]board.Magic

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for sq := board.A1; sq <= board.H8; sq++ {
		sq := sq
		g.Go(func() error {
			m, err := NewSearcher(squareSeed(seed, sq), budget).Find(ctx, pt, sq)
			if err != nil {
				return err
			}
			set[sq] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &set, nil
}
