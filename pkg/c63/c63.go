// Package c63 defines the constants of the c63 stream format: the marker
// tags that delimit stream sections and the default quantization tables.
package c63

// Marker is the tag byte that follows MarkerPrefix at the start of a section.
type Marker byte

// MarkerPrefix introduces every marker in the stream.
const MarkerPrefix byte = 0xFF

const (
	SOI Marker = 0xD8 // start of image
	DQT Marker = 0xDB // quantization tables
	SOF Marker = 0xC0 // frame header
	DHT Marker = 0xC4 // huffman tables
	SOS Marker = 0xDA // start of scan
	EOI Marker = 0xD9 // end of image
)

// String returns the conventional marker mnemonic.
func (m Marker) String() string {
	switch m {
	case SOI:
		return "SOI"
	case DQT:
		return "DQT"
	case SOF:
		return "SOF"
	case DHT:
		return "DHT"
	case SOS:
		return "SOS"
	case EOI:
		return "EOI"
	default:
		return "unknown"
	}
}

// Bytes returns the two-byte on-disk form of the marker.
func (m Marker) Bytes() []byte {
	return []byte{MarkerPrefix, byte(m)}
}

// MaxDimension is the largest picture width or height a stream can carry.
// SOF and the MP4 sample entry store sizes as u16, and the luma plane is
// padded up to a multiple of 16, so 65520 is the last size whose padded
// plane still fits.
const MaxDimension = 65520

// DefaultQP is the quality parameter used when none is configured.
const DefaultQP = 25

// YQuantTable is the default luma quantization table, in zig-zag order.
var YQuantTable = [64]uint8{
	6, 4, 4, 5, 4, 4, 6, 5,
	5, 5, 7, 6, 6, 7, 9, 16,
	10, 9, 8, 8, 9, 19, 14, 14,
	11, 16, 23, 20, 24, 12, 22, 20,
	22, 22, 25, 28, 36, 31, 25, 27,
	34, 27, 22, 22, 32, 43, 32, 34,
	38, 39, 40, 41, 40, 24, 30, 45,
	48, 44, 40, 48, 36, 40, 40, 39,
}

// UVQuantTable is the default chroma quantization table, in zig-zag order.
var UVQuantTable = [64]uint8{
	7, 7, 7, 10, 8, 10, 19, 10,
	10, 19, 39, 26, 22, 26, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
	39, 39, 39, 39, 39, 39, 39, 39,
}
