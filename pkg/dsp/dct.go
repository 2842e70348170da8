package dsp

import "math"

// dctLookup[j][i] = cos((2j+1)*i*pi/16), the unnormalized 8-point DCT-II basis.
var dctLookup [8][8]float64

func init() {
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			dctLookup[j][i] = math.Cos(float64(2*j+1) * float64(i) * math.Pi / 16)
		}
	}
}

func dct1D(in, out []float64) {
	for i := 0; i < 8; i++ {
		var sum float64
		for j := 0; j < 8; j++ {
			sum += in[j] * dctLookup[j][i]
		}
		out[i] = sum
	}
}

func idct1D(in, out []float64) {
	for i := 0; i < 8; i++ {
		var sum float64
		for j := 0; j < 8; j++ {
			sum += in[j] * dctLookup[i][j]
		}
		out[i] = sum
	}
}

func transpose(in, out *[64]float64) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			out[i*8+j] = in[j*8+i]
		}
	}
}

// scaleBlock applies alpha(u)*alpha(v) with alpha(0) = 1/sqrt(2).
func scaleBlock(in, out *[64]float64) {
	for v := 0; v < 8; v++ {
		for u := 0; u < 8; u++ {
			a1, a2 := 1.0, 1.0
			if u == 0 {
				a1 = 1 / math.Sqrt2
			}
			if v == 0 {
				a2 = 1 / math.Sqrt2
			}
			out[v*8+u] = in[v*8+u] * a1 * a2
		}
	}
}

// separable runs f over every row, transposes, runs f again and transposes
// back, leaving the result in block.
func separable(block *[64]float64, f func(in, out []float64)) {
	var tmp [64]float64
	for v := 0; v < 8; v++ {
		f(block[v*8:v*8+8], tmp[v*8:v*8+8])
	}
	transpose(&tmp, block)
	for v := 0; v < 8; v++ {
		f(block[v*8:v*8+8], tmp[v*8:v*8+8])
	}
	transpose(&tmp, block)
}

// ForwardDCT transforms a residual block into scaled frequency coefficients
// in row-major order.
func ForwardDCT(residual *[64]int16) [64]float64 {
	var mb, out [64]float64
	for i, r := range residual {
		mb[i] = float64(r)
	}
	separable(&mb, dct1D)
	scaleBlock(&mb, &out)
	return out
}

// InverseDCT transforms row-major dequantized coefficients back into a
// residual block. The zero-frequency scaling is the same as in ForwardDCT:
// the orthonormal transform carries alpha(u)*alpha(v) in both directions, so
// row 0 and column 0 are multiplied by 1/sqrt2 again here. Undoing the
// forward scale with sqrt2 instead would not reconstruct the input.
func InverseDCT(coeffs *[64]float64) [64]int16 {
	var mb [64]float64
	scaleBlock(coeffs, &mb)
	separable(&mb, idct1D)

	var out [64]int16
	for i, c := range mb {
		out[i] = int16(math.Round(c))
	}
	return out
}
