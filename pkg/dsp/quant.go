package dsp

import (
	"math"

	"github.com/user/c63/pkg/assert"
)

// QuantTable holds one divisor per zig-zag position.
type QuantTable [64]uint8

// Quantize divides zig-zag ordered coefficients by 4 and by the table entry
// of their position, rounding to the nearest integer.
func Quantize(scan *[64]float64, q *QuantTable, out []int16) {
	assert.True(len(out) >= 64, "quantize output holds %d coefficients", len(out))
	for z := 0; z < 64; z++ {
		out[z] = int16(math.Round((scan[z] / 4) / float64(q[z])))
	}
}

// Dequantize is the inverse of Quantize: multiply by the table entry, divide
// by 4 and round. The result stays in zig-zag order.
func Dequantize(in []int16, q *QuantTable) [64]float64 {
	assert.True(len(in) >= 64, "dequantize input holds %d coefficients", len(in))
	var out [64]float64
	for z := 0; z < 64; z++ {
		out[z] = math.Round(float64(in[z]) * float64(q[z]) / 4)
	}
	return out
}

// DCTQuantBlock runs the forward path on one residual block, writing 64
// zig-zag ordered quantized coefficients to out.
func DCTQuantBlock(residual *[64]int16, out []int16, q *QuantTable) {
	coeffs := ForwardDCT(residual)
	scan := Zigzag(&coeffs)
	Quantize(&scan, q, out)
}

// DequantIDCTBlock runs the inverse path on 64 quantized coefficients and
// returns the residual block.
func DequantIDCTBlock(in []int16, q *QuantTable) [64]int16 {
	scan := Dequantize(in, q)
	coeffs := Unzigzag(&scan)
	return InverseDCT(&coeffs)
}
