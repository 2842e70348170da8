package yuv

import "github.com/user/c63/pkg/assert"

// Macroblock carries the motion decision for one 8x8 block.
type Macroblock struct {
	UseMV bool
	MVX   int8
	MVY   int8
}

// MacroblockGrid is the row-major grid of macroblocks of one component.
type MacroblockGrid struct {
	Cols int
	Rows int
	MBs  []Macroblock
}

// NewMacroblockGrid allocates a grid with every macroblock at its default.
func NewMacroblockGrid(cols, rows int) *MacroblockGrid {
	assert.True(cols > 0 && rows > 0, "empty macroblock grid %dx%d", cols, rows)
	return &MacroblockGrid{
		Cols: cols,
		Rows: rows,
		MBs:  make([]Macroblock, cols*rows),
	}
}

// At returns the macroblock at grid position (x, y).
func (g *MacroblockGrid) At(x, y int) *Macroblock {
	assert.True(x >= 0 && x < g.Cols && y >= 0 && y < g.Rows,
		"macroblock (%d,%d) outside grid %dx%d", x, y, g.Cols, g.Rows)
	return &g.MBs[y*g.Cols+x]
}
