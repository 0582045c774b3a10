package board

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"4r3/8/8/8/8/8/4R3/4K2k b - - 17 42",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 20",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if err := pos.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if got := pos.ToFEN(); got != fen {
				t.Errorf("ToFEN() = %q, want %q", got, fen)
			}
			again, err := ParseFEN(pos.ToFEN())
			if err != nil {
				t.Fatalf("reparse: %v", err)
			}
			if *again != *pos {
				t.Error("reparsed position differs")
			}
		})
	}
}

func TestFENNormalises(t *testing.T) {
	pos, err := ParseFEN("  4k3/8/8/8/8/8/8/4K3   w   -  -  0   1 ")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pos.ToFEN(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1"; got != want {
		t.Errorf("ToFEN() = %q, want %q", got, want)
	}

	pos, err = ParseFEN("4k3/8/8/8/8/8/8/4K3 w qkQK - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.CastlingRights() != AllCastling || pos.ToFEN() != "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1" {
		t.Errorf("castling not normalised: %s", pos.ToFEN())
	}
}

func TestParseFENFields(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR b KQkq c6 5 12")
	if err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove() != Black {
		t.Errorf("side = %s", pos.SideToMove())
	}
	if pos.EnPassant() != C6 {
		t.Errorf("en passant = %s", pos.EnPassant())
	}
	if pos.HalfMoveClock() != 5 || pos.FullMoveNumber() != 12 {
		t.Errorf("clocks = %d %d", pos.HalfMoveClock(), pos.FullMoveNumber())
	}
	if pos.KingSquare(White) != E1 || pos.KingSquare(Black) != E8 {
		t.Errorf("kings = %s %s", pos.KingSquare(White), pos.KingSquare(Black))
	}
	if pos.PieceOn(C5) != BlackPawn || pos.PieceOn(E4) != WhitePawn || pos.PieceOn(E2) != NoPiece {
		t.Error("mailbox mismatch")
	}
	if pos.Pieces(White, Pawn) != (Rank2&^SquareBB(E2))|SquareBB(E4) {
		t.Errorf("white pawns =\n%s", pos.Pieces(White, Pawn))
	}
	if pos.ColorOccupancy(White)|pos.ColorOccupancy(Black) != pos.Occupancy() {
		t.Error("occupancy is not the union of colors")
	}
	if pos.Occupancy().PopCount() != 32 {
		t.Errorf("occupancy has %d pieces", pos.Occupancy().PopCount())
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty", "", ErrFieldCount},
		{"five fields", "4k3/8/8/8/8/8/8/4K3 w - - 0", ErrFieldCount},
		{"seven fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 x", ErrFieldCount},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1", ErrRankCount},
		{"bad piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1", ErrPieceChar},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1", ErrRankWidth},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1", ErrRankWidth},
		{"piece past h", "4k3/8/8/8/8/8/8/8K w - - 0 1", ErrRankWidth},
		{"digit nine", "4k3/8/8/8/8/8/8/9 w - - 0 1", ErrPieceChar},
		{"side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", ErrSideToMove},
		{"castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", ErrCastling},
		{"en passant", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", ErrEnPassant},
		{"halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1", ErrNumber},
		{"negative fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 -1", ErrNumber},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", ErrKingCount},
		{"two black kings", "k6k/8/8/8/8/8/8/4K3 w - - 0 1", ErrKingCount},
		{"signed halfmove", "4k3/8/8/8/8/8/8/4K3 w - - +3 1", ErrNumber},
		{"signed fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 +1", ErrNumber},
		{"en passant on rank 4", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1", ErrEnPassant},
		{"en passant on rank 1", "4k3/8/8/8/8/8/8/4K3 w - a1 0 1", ErrEnPassant},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) = %v, want error", tc.fen, pos.ToFEN())
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseFEN(%q) error = %v, want %v", tc.fen, err, tc.want)
			}
			var fenErr *FENError
			if !errors.As(err, &fenErr) {
				t.Errorf("error %T is not a *FENError", err)
			}
		})
	}
}

func TestParseFENMissingKing(t *testing.T) {
	tests := []struct {
		fen     string
		missing Color
	}{
		{"4r3/8/8/8/8/8/8/4K3 w - - 0 1", Black},
		{"4r3/8/8/8/8/8/4R3/4K3 w - - 0 1", Black},
		{"4k3/8/8/8/8/8/8/8 b - - 0 1", White},
	}

	for _, tc := range tests {
		t.Run(tc.fen, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if pos.KingSquare(tc.missing) != NoSquare {
				t.Errorf("KingSquare(%s) = %s, want -", tc.missing, pos.KingSquare(tc.missing))
			}
			if got := pos.ToFEN(); got != tc.fen {
				t.Errorf("ToFEN() = %q, want %q", got, tc.fen)
			}
			if err := pos.Validate(); !errors.Is(err, ErrKingCount) {
				t.Errorf("Validate error = %v, want %v", err, ErrKingCount)
			}
		})
	}
}

func TestParseFENEnPassantRanks(t *testing.T) {
	for _, ep := range []string{"a3", "h3", "d6", "e6"} {
		fen := "4k3/8/8/8/8/8/8/4K3 w - " + ep + " 0 1"
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if pos.EnPassant().String() != ep {
			t.Errorf("EnPassant() = %s, want %s", pos.EnPassant(), ep)
		}
	}
}
