package dsp

// ZigzagOrder maps a zig-zag scan position to the row-major index (v*8+u)
// of the coefficient it reads.
var ZigzagOrder = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// Zigzag reorders a row-major 8x8 block into zig-zag scan order.
func Zigzag[T any](block *[64]T) [64]T {
	var out [64]T
	for z, idx := range ZigzagOrder {
		out[z] = block[idx]
	}
	return out
}

// Unzigzag is the inverse of Zigzag.
func Unzigzag[T any](scan *[64]T) [64]T {
	var out [64]T
	for z, idx := range ZigzagOrder {
		out[idx] = scan[z]
	}
	return out
}
