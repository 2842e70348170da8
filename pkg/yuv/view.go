package yuv

import "github.com/user/c63/pkg/assert"

// BlockSize is the edge length of a macroblock and of a transform block.
const BlockSize = 8

// BlockView addresses an 8x8 window inside a larger sample buffer without
// copying it. Bounds are checked once, when the view is created.
type BlockView struct {
	pix    []byte
	origin int
	stride int
}

// NewBlockView returns the 8x8 window whose top-left sample is (x, y) in a
// buffer with the given stride.
func NewBlockView(pix []byte, x, y, stride int) BlockView {
	assert.True(x >= 0 && y >= 0 && x+BlockSize <= stride,
		"block (%d,%d) outside stride %d", x, y, stride)
	origin := y*stride + x
	assert.True(origin+(BlockSize-1)*stride+BlockSize <= len(pix),
		"block (%d,%d) outside buffer of %d samples", x, y, len(pix))
	return BlockView{pix: pix, origin: origin, stride: stride}
}

// At returns the sample at column u, row v of the block.
func (b BlockView) At(u, v int) byte {
	return b.pix[b.origin+v*b.stride+u]
}

// Set stores a sample at column u, row v of the block.
func (b BlockView) Set(u, v int, val byte) {
	b.pix[b.origin+v*b.stride+u] = val
}

// Row returns row v of the block as an 8-sample slice aliasing the buffer.
func (b BlockView) Row(v int) []byte {
	off := b.origin + v*b.stride
	return b.pix[off : off+BlockSize : off+BlockSize]
}

// Stride returns the distance in samples between two rows.
func (b BlockView) Stride() int { return b.stride }

// CopyFrom copies src into b sample by sample.
func (b BlockView) CopyFrom(src BlockView) {
	for v := 0; v < BlockSize; v++ {
		copy(b.Row(v), src.Row(v))
	}
}
