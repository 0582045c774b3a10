package board

import "testing"

func TestMoveEncoding(t *testing.T) {
	tests := []struct {
		from, to  Square
		mt        MoveType
		capture   bool
		promotion bool
		promo     PieceType
		uci       string
	}{
		{E2, E4, DoublePawnPush, false, false, 0, "e2e4"},
		{G1, F3, Normal, false, false, 0, "g1f3"},
		{E1, G1, KingCastle, false, false, 0, "e1g1"},
		{E8, C8, QueenCastle, false, false, 0, "e8c8"},
		{D4, E5, Capture, true, false, 0, "d4e5"},
		{E5, D6, EnPassant, true, false, 0, "e5d6"},
		{A7, A8, QueenPromotion, false, true, Queen, "a7a8q"},
		{A7, A8, KnightPromotion, false, true, Knight, "a7a8n"},
		{B2, A1, RookPromotionCapture, true, true, Rook, "b2a1r"},
		{G7, H8, BishopPromotionCapture, true, true, Bishop, "g7h8b"},
		{H8, A1, Normal, false, false, 0, "h8a1"},
	}

	for _, tc := range tests {
		t.Run(tc.uci, func(t *testing.T) {
			m := NewMove(tc.from, tc.to, tc.mt)
			if m.From() != tc.from || m.To() != tc.to || m.Type() != tc.mt {
				t.Fatalf("decoded %s %s %d, want %s %s %d", m.From(), m.To(), m.Type(), tc.from, tc.to, tc.mt)
			}
			if m.IsCapture() != tc.capture {
				t.Errorf("IsCapture() = %v", m.IsCapture())
			}
			if m.IsPromotion() != tc.promotion {
				t.Errorf("IsPromotion() = %v", m.IsPromotion())
			}
			if tc.promotion && m.PromotionType() != tc.promo {
				t.Errorf("PromotionType() = %s, want %s", m.PromotionType(), tc.promo)
			}
			if m.IsCastling() != (tc.mt == KingCastle || tc.mt == QueenCastle) {
				t.Errorf("IsCastling() = %v", m.IsCastling())
			}
			if m.String() != tc.uci {
				t.Errorf("String() = %q, want %q", m.String(), tc.uci)
			}
		})
	}
}

func TestMoveLayout(t *testing.T) {
	m := NewMove(E7, E8, QueenPromotionCapture)
	if want := Move(E7) | Move(E8)<<6 | Move(15)<<12; m != want {
		t.Errorf("NewMove = %#04x, want %#04x", uint16(m), uint16(want))
	}
	if NoMove.String() != "0000" {
		t.Errorf("NoMove.String() = %q", NoMove.String())
	}
}
