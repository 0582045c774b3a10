package board

import (
	"fmt"
	"sync"
)

var (
	rookTable   SliderTable
	bishopTable SliderTable

	initOnce sync.Once
)

// Init builds every lookup table: zobrist keys, leaper attacks, the magic
// slider tables and the square-pair geometry. It must return before any
// attack or geometry query runs. Later calls are no-ops.
func Init() {
	initOnce.Do(func() {
		initZobrist(zobristSeed)
		initLeaperAttacks()
		initSliderTables()
		initGeometry()
	})
}

func initSliderTables() {
	rook, err := NewSliderTable(Rook, &rookMagics)
	if err != nil {
		panic(fmt.Sprintf("board: compiled rook magics: %v", err))
	}
	bishop, err := NewSliderTable(Bishop, &bishopMagics)
	if err != nil {
		panic(fmt.Sprintf("board: compiled bishop magics: %v", err))
	}
	rookTable = *rook
	bishopTable = *bishop
}
