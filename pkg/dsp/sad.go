// Package dsp implements the block-level signal processing of the encoder:
// the SAD distortion metric, the 8x8 DCT, zig-zag reordering and
// quantization, and the plane drivers built on them.
package dsp

import (
	"math"

	"github.com/user/c63/pkg/yuv"
)

// MaxSAD8x8 is the largest value SAD8x8 can return.
const MaxSAD8x8 = 64 * 255

// SAD8x8 returns the sum of absolute differences between two 8x8 blocks.
func SAD8x8(a, b yuv.BlockView) int {
	sum := 0
	for v := 0; v < yuv.BlockSize; v++ {
		ra, rb := a.Row(v), b.Row(v)
		for u := 0; u < yuv.BlockSize; u++ {
			d := int(rb[u]) - int(ra[u])
			if d < 0 {
				d = -d
			}
			sum += d
		}
	}
	return sum
}

// SAD8x8Strided is SAD8x8 for two buffers that each start at the top-left
// sample of their block and share a row stride.
func SAD8x8Strided(a, b []byte, stride int) int {
	return SAD8x8(yuv.NewBlockView(a, 0, 0, stride), yuv.NewBlockView(b, 0, 0, stride))
}

// PSNR returns the peak signal to noise ratio in dB between two equally
// sized sample buffers. Identical buffers give +Inf.
func PSNR(a, b []byte) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var sse float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sse += d * d
	}
	if sse == 0 {
		return math.Inf(1)
	}
	mse := sse / float64(len(a))
	return 10 * math.Log10(255*255/mse)
}
