package magicsearch

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/hailam/chesscore/internal/board"
)

// WriteGo emits the board package source holding both magic sets.
func WriteGo(w io.Writer, rook, bishop *[64]board.Magic) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by findmagics; DO NOT EDIT.\n\npackage board\n")
	writeSet(&buf, "rookMagics", rook)
	writeSet(&buf, "bishopMagics", bishop)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func writeSet(buf *bytes.Buffer, name string, set *[64]board.Magic) {
	fmt.Fprintf(buf, "\nvar %s = [64]Magic{\n", name)
	for _, m := range set {
		fmt.Fprintf(buf, "\t{Mask: 0x%016x, Multiplier: 0x%016x, Shift: %d},\n", uint64(m.Mask), m.Multiplier, m.Shift)
	}
	buf.WriteString("}\n")
}
