// Package render draws positions as SVG with optional square highlights.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/chesscore/internal/board"
)

const (
	squareSize = 45
	boardSize  = 8 * squareSize

	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
)

// Highlight recolours a set of squares. Later highlights win.
type Highlight struct {
	Squares board.Bitboard
	Fill    string
}

var glyphs = [board.NoPiece]string{
	board.WhitePawn:   "♙",
	board.WhiteKnight: "♘",
	board.WhiteBishop: "♗",
	board.WhiteRook:   "♖",
	board.WhiteQueen:  "♕",
	board.WhiteKing:   "♔",
	board.BlackPawn:   "♟",
	board.BlackKnight: "♞",
	board.BlackBishop: "♝",
	board.BlackRook:   "♜",
	board.BlackQueen:  "♛",
	board.BlackKing:   "♚",
}

// squareOrigin returns the top-left pixel of sq with White at the bottom.
func squareOrigin(sq board.Square) (int, int) {
	return sq.File() * squareSize, (7 - sq.Rank()) * squareSize
}

func squareFill(sq board.Square, highlights []Highlight) string {
	fill := lightFill
	if (sq.File()+sq.Rank())%2 == 0 {
		fill = darkFill
	}
	for _, h := range highlights {
		if h.Squares.IsSet(sq) {
			fill = h.Fill
		}
	}
	return fill
}

// SVG writes pos as an SVG document.
func SVG(w io.Writer, pos *board.Position, highlights ...Highlight) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := squareOrigin(sq)
		canvas.Rect(x, y, squareSize, squareSize, "fill:"+squareFill(sq, highlights))
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceOn(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := squareOrigin(sq)
		canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[piece],
			fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*3/4))
	}

	canvas.End()
}
