package dsp

import (
	"github.com/user/c63/pkg/assert"
	"github.com/user/c63/pkg/yuv"
)

// DCTQuantize transforms the residual orig - pred of a whole plane into out,
// block by block, left to right within each 8-row band and bands top to
// bottom.
func DCTQuantize(orig, pred *yuv.Plane, out *yuv.CoefficientPlane, q *QuantTable) {
	checkSameShape(orig, pred)
	assert.True(out.Width == orig.Width && out.Height == orig.Height,
		"coefficient plane %dx%d does not match %dx%d", out.Width, out.Height, orig.Width, orig.Height)

	for y := 0; y < orig.Height; y += yuv.BlockSize {
		dctQuantizeRow(orig, pred, y, out, q)
	}
}

func dctQuantizeRow(orig, pred *yuv.Plane, y int, out *yuv.CoefficientPlane, q *QuantTable) {
	var block [64]int16
	for x := 0; x < orig.Width; x += yuv.BlockSize {
		ob, pb := orig.Block(x, y), pred.Block(x, y)
		for v := 0; v < yuv.BlockSize; v++ {
			for u := 0; u < yuv.BlockSize; u++ {
				block[v*8+u] = int16(ob.At(u, v)) - int16(pb.At(u, v))
			}
		}
		DCTQuantBlock(&block, out.Block(x, y), q)
	}
}

// DequantizeIDCT reconstructs a plane from quantized coefficients and the
// prediction they were computed against. Sums are clamped to [0, 255]
// because the floating point transform is not exact.
func DequantizeIDCT(in *yuv.CoefficientPlane, pred, out *yuv.Plane, q *QuantTable) {
	checkSameShape(pred, out)
	assert.True(in.Width == out.Width && in.Height == out.Height,
		"coefficient plane %dx%d does not match %dx%d", in.Width, in.Height, out.Width, out.Height)

	for y := 0; y < out.Height; y += yuv.BlockSize {
		dequantizeIDCTRow(in, pred, y, out, q)
	}
}

func dequantizeIDCTRow(in *yuv.CoefficientPlane, pred *yuv.Plane, y int, out *yuv.Plane, q *QuantTable) {
	for x := 0; x < out.Width; x += yuv.BlockSize {
		block := DequantIDCTBlock(in.Block(x, y), q)
		pb, ob := pred.Block(x, y), out.Block(x, y)
		for v := 0; v < yuv.BlockSize; v++ {
			for u := 0; u < yuv.BlockSize; u++ {
				ob.Set(u, v, clampByte(int(block[v*8+u])+int(pb.At(u, v))))
			}
		}
	}
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func checkSameShape(a, b *yuv.Plane) {
	assert.True(a.Width == b.Width && a.Height == b.Height,
		"plane %dx%d does not match %dx%d", a.Width, a.Height, b.Width, b.Height)
}
