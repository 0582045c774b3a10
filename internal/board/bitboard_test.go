package board

import (
	"strings"
	"testing"
)

func TestSquareBB(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		if bb.PopCount() != 1 {
			t.Fatalf("SquareBB(%s) has %d bits", sq, bb.PopCount())
		}
		if bb.LSB() != sq {
			t.Errorf("SquareBB(%s).LSB() = %s", sq, bb.LSB())
		}
		if NewSquare(sq.File(), sq.Rank()) != sq {
			t.Errorf("NewSquare(%d, %d) != %s", sq.File(), sq.Rank(), sq)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", A1, false},
		{"h8", H8, false},
		{"e4", E4, false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"e", NoSquare, true},
		{"-", NoSquare, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSquare(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseSquare(%q) = %s, want %s", tc.in, got, tc.want)
			}
			if !tc.wantErr && got.String() != tc.in {
				t.Errorf("String() = %q, want %q", got.String(), tc.in)
			}
		})
	}

	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
}

func TestBitOperations(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(E4).Set(A1).Set(H8)

	if bb.PopCount() != 3 {
		t.Fatalf("PopCount = %d, want 3", bb.PopCount())
	}
	if !bb.IsSet(E4) || bb.IsSet(E5) {
		t.Errorf("IsSet mismatch on %x", uint64(bb))
	}

	bb = bb.Clear(E4)
	if bb.IsSet(E4) {
		t.Error("E4 still set after Clear")
	}

	got := bb.Squares()
	if len(got) != 2 || got[0] != A1 || got[1] != H8 {
		t.Errorf("Squares() = %v, want [a1 h8]", got)
	}

	if sq := bb.PopLSB(); sq != A1 {
		t.Errorf("PopLSB() = %s, want a1", sq)
	}
	if bb != SquareBB(H8) {
		t.Errorf("after PopLSB bb = %x", uint64(bb))
	}

	if Empty.PopCount() != 0 || Universe.PopCount() != 64 {
		t.Error("Empty/Universe popcount wrong")
	}
}

func TestBitboardString(t *testing.T) {
	s := (FileA | Rank8).String()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0] != "8 1 1 1 1 1 1 1 1 " {
		t.Errorf("rank 8 line = %q", lines[0])
	}
	if lines[7] != "1 1 . . . . . . . " {
		t.Errorf("rank 1 line = %q", lines[7])
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		sq   Square
		d    Direction
		ok   bool
		want Square
	}{
		{E4, North, true, E5},
		{E4, SouthWest, true, D3},
		{H4, East, false, NoSquare},
		{A4, West, false, NoSquare},
		{H1, NorthEast, false, NoSquare},
		{A8, NorthWest, false, NoSquare},
		{A1, South, false, NoSquare},
		{G7, NorthEast, true, H8},
	}

	for _, tc := range tests {
		if got := tc.sq.CanStep(tc.d); got != tc.ok {
			t.Errorf("%s.CanStep(%d) = %v, want %v", tc.sq, tc.d, got, tc.ok)
			continue
		}
		if tc.ok && tc.sq.Step(tc.d) != tc.want {
			t.Errorf("%s.Step(%d) = %s, want %s", tc.sq, tc.d, tc.sq.Step(tc.d), tc.want)
		}
	}

	for _, d := range Directions {
		if d.IsDiagonal() != (d == NorthEast || d == NorthWest || d == SouthEast || d == SouthWest) {
			t.Errorf("IsDiagonal(%d) wrong", d)
		}
	}
}
