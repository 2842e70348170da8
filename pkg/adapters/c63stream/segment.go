// Package c63stream serializes encoded frames as a c63 marker stream.
//
// A stream opens with SOI and closes with EOI. Every frame is one segment of
// three sections:
//
//	DQT  u16 length, then the Y, U and V quantization tables (64 bytes each)
//	SOF  u16 length, u16 height, u16 width, u8 keyframe, u32 frame number
//	SOS  u32 length, then a zstd frame holding the macroblocks and residuals
//
// All integers are little endian. The SOS payload stores, per component, one
// (flags, mvx, mvy) triple per macroblock followed by the coefficient plane.
package c63stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/yuv"
)

const (
	dqtLength = yuv.NumComponents * 64
	sofLength = 2 + 2 + 1 + 4

	flagUseMV = 1 << 0
)

// CheckGeometry returns ErrUnsupportedGeometry unless both the raw and the
// padded luma size of geom fit in 16 bits.
func CheckGeometry(geom yuv.Geometry) error {
	w, h := geom.PlaneWidth(yuv.ComponentY), geom.PlaneHeight(yuv.ComponentY)
	if geom.Width <= 0 || geom.Height <= 0 || w > math.MaxUint16 || h > math.MaxUint16 {
		return fmt.Errorf("%w: %dx%d (padded %dx%d)", ErrUnsupportedGeometry, geom.Width, geom.Height, w, h)
	}
	return nil
}

// payloadSize is the uncompressed SOS payload size of one frame of geom.
func payloadSize(geom yuv.Geometry) int {
	n := 0
	for _, c := range yuv.Components {
		n += 3*geom.GridCols(c)*geom.GridRows(c) + 2*geom.PlaneWidth(c)*geom.PlaneHeight(c)
	}
	return n
}

// compressBound is the largest zstd frame EncodeAll can produce for n input
// bytes. It follows ZSTD_COMPRESSBOUND plus room for the frame header and
// checksum.
func compressBound(n int) int {
	const block = 128 << 10
	bound := n + n>>8 + 32
	if n < block {
		bound += (block - n) >> 11
	}
	return bound
}

// SegmentEncoder turns frames into self-contained stream segments.
type SegmentEncoder struct {
	quant   [yuv.NumComponents]dsp.QuantTable
	zenc    *zstd.Encoder
	payload []byte
}

// NewSegmentEncoder creates an encoder that writes quant into every segment.
func NewSegmentEncoder(quant [yuv.NumComponents]dsp.QuantTable) (*SegmentEncoder, error) {
	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &SegmentEncoder{quant: quant, zenc: zenc}, nil
}

// AppendSegment appends the DQT, SOF and SOS sections of frame to dst.
func (e *SegmentEncoder) AppendSegment(dst []byte, frame *yuv.Frame, geom yuv.Geometry) []byte {
	dst = append(dst, c63.DQT.Bytes()...)
	dst = binary.LittleEndian.AppendUint16(dst, dqtLength)
	for i := range e.quant {
		dst = append(dst, e.quant[i][:]...)
	}

	dst = append(dst, c63.SOF.Bytes()...)
	dst = binary.LittleEndian.AppendUint16(dst, sofLength)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(geom.Height))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(geom.Width))
	if frame.Keyframe {
		dst = append(dst, 1)
	} else {
		dst = append(dst, 0)
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(frame.Number))

	e.payload = appendPayload(e.payload[:0], frame)
	compressed := e.zenc.EncodeAll(e.payload, nil)

	dst = append(dst, c63.SOS.Bytes()...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...)
}

// Close releases the compressor.
func (e *SegmentEncoder) Close() error {
	return e.zenc.Close()
}

func appendPayload(dst []byte, frame *yuv.Frame) []byte {
	for _, c := range yuv.Components {
		for _, mb := range frame.Macroblocks(c).MBs {
			var flags byte
			if mb.UseMV {
				flags |= flagUseMV
			}
			dst = append(dst, flags, byte(mb.MVX), byte(mb.MVY))
		}
		for _, v := range frame.Residuals.Plane(c).Coeffs {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		}
	}
	return dst
}
