package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/render"
)

var (
	fenFlag    = flag.String("fen", board.StartFEN, "position to inspect")
	svgPath    = flag.String("svg", "", "write an SVG diagram with checkers, pins and attacked squares to file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

// Highlight colours for the SVG diagram.
const (
	attackedFill = "#e8c547"
	pinnedFill   = "#5b8bd9"
	checkerFill  = "#d9534f"
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.Init()

	pos, err := board.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatal(err)
	}

	report(os.Stdout, pos)

	if *svgPath != "" {
		if err := writeSVG(*svgPath, pos); err != nil {
			log.Fatal("could not write SVG: ", err)
		}
		log.Printf("diagram written to %s", *svgPath)
	}
}

// attackedBy returns every square attacked by color c.
func attackedBy(pos *board.Position, c board.Color) board.Bitboard {
	var attacked board.Bitboard
	for sq := board.A1; sq <= board.H8; sq++ {
		if board.IsSquareAttacked(pos, sq, c) {
			attacked |= board.SquareBB(sq)
		}
	}
	return attacked
}

func report(w io.Writer, pos *board.Position) {
	fmt.Fprint(w, pos)
	fmt.Fprintf(w, "FEN: %s\n", pos.ToFEN())

	for _, c := range []board.Color{board.White, board.Black} {
		if pos.KingSquare(c) == board.NoSquare {
			fmt.Fprintf(w, "\n%s has no king\n", c)
		} else {
			fmt.Fprintf(w, "\n%s king on %s\n", c, pos.KingSquare(c))
			fmt.Fprintf(w, "  checkers: %v\n", board.Checkers(pos, c).Squares())

			pins := board.ComputePins(pos, c)
			for bb := pins.Pinned; bb != 0; {
				sq := bb.PopLSB()
				fmt.Fprintf(w, "  pinned:   %s %s, may move to %v\n", pos.PieceOn(sq), sq, pins.PinRay(sq).Squares())
			}
		}

		attacked := attackedBy(pos, c)
		fmt.Fprintf(w, "  attacks %d squares:\n%s", attacked.PopCount(), attacked)
	}
}

func writeSVG(path string, pos *board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	us := pos.SideToMove()
	highlights := []render.Highlight{
		{Squares: attackedBy(pos, us.Other()), Fill: attackedFill},
	}
	if pos.KingSquare(us) != board.NoSquare {
		pins := board.ComputePins(pos, us)
		highlights = append(highlights,
			render.Highlight{Squares: pins.Pinned, Fill: pinnedFill},
			render.Highlight{Squares: board.Checkers(pos, us), Fill: checkerFill},
		)
	}

	render.SVG(f, pos, highlights...)
	return f.Close()
}
