package c63stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/yuv"
)

// Segment is one frame as stored in the stream. It carries everything a
// decoder needs: tables, header, motion vectors and quantized residuals.
type Segment struct {
	Number   int
	Keyframe bool
	Geometry yuv.Geometry
	Quant    [yuv.NumComponents]dsp.QuantTable

	Macroblocks [yuv.NumComponents]*yuv.MacroblockGrid
	Residuals   *yuv.Coefficients
}

// Reader parses a c63 marker stream segment by segment.
type Reader struct {
	r    *bufio.Reader
	zdec *zstd.Decoder
	done bool
}

// NewReader consumes SOI from r.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	m, err := readMarker(br)
	if err != nil {
		return nil, err
	}
	if m != c63.SOI {
		return nil, fmt.Errorf("%w: stream starts with %s", ErrInvalidStream, m)
	}
	zdec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Reader{r: br, zdec: zdec}, nil
}

// ReadSegment returns the next segment, or io.EOF after EOI.
func (r *Reader) ReadSegment() (*Segment, error) {
	if r.done {
		return nil, io.EOF
	}

	seg := &Segment{}
	var haveSOF bool
	for {
		m, err := readMarker(r.r)
		if err != nil {
			return nil, err
		}

		switch m {
		case c63.EOI:
			r.done = true
			r.zdec.Close()
			return nil, io.EOF
		case c63.DQT:
			if err := r.readDQT(seg); err != nil {
				return nil, err
			}
		case c63.SOF:
			if err := r.readSOF(seg); err != nil {
				return nil, err
			}
			haveSOF = true
		case c63.SOS:
			if !haveSOF {
				return nil, fmt.Errorf("%w: SOS before SOF", ErrInvalidStream)
			}
			if err := r.readSOS(seg); err != nil {
				return nil, err
			}
			return seg, nil
		default:
			return nil, fmt.Errorf("%w: unexpected marker %s", ErrInvalidStream, m)
		}
	}
}

func (r *Reader) readDQT(seg *Segment) error {
	var length uint16
	if err := binary.Read(r.r, binary.LittleEndian, &length); err != nil {
		return truncated("DQT", err)
	}
	if length != dqtLength {
		return fmt.Errorf("%w: DQT length %d", ErrInvalidStream, length)
	}
	for i := range seg.Quant {
		if _, err := io.ReadFull(r.r, seg.Quant[i][:]); err != nil {
			return truncated("DQT", err)
		}
	}
	return nil
}

func (r *Reader) readSOF(seg *Segment) error {
	var hdr struct {
		Length   uint16
		Height   uint16
		Width    uint16
		Keyframe uint8
		Number   uint32
	}
	if err := binary.Read(r.r, binary.LittleEndian, &hdr); err != nil {
		return truncated("SOF", err)
	}
	if hdr.Length != sofLength || hdr.Width == 0 || hdr.Height == 0 {
		return fmt.Errorf("%w: SOF length %d for %dx%d", ErrInvalidStream, hdr.Length, hdr.Width, hdr.Height)
	}
	seg.Geometry = yuv.NewGeometry(int(hdr.Width), int(hdr.Height))
	seg.Keyframe = hdr.Keyframe != 0
	seg.Number = int(hdr.Number)
	return nil
}

func (r *Reader) readSOS(seg *Segment) error {
	var length uint32
	if err := binary.Read(r.r, binary.LittleEndian, &length); err != nil {
		return truncated("SOS", err)
	}
	if limit := compressBound(payloadSize(seg.Geometry)); int64(length) > int64(limit) {
		return fmt.Errorf("%w: SOS length %d exceeds %d for %dx%d", ErrInvalidStream, length, limit, seg.Geometry.Width, seg.Geometry.Height)
	}
	compressed := make([]byte, length)
	if _, err := io.ReadFull(r.r, compressed); err != nil {
		return truncated("SOS", err)
	}
	payload, err := r.zdec.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("%w: SOS payload: %v", ErrInvalidStream, err)
	}
	return parsePayload(seg, payload)
}

func parsePayload(seg *Segment, payload []byte) error {
	g := seg.Geometry
	seg.Residuals = yuv.NewCoefficients(g)

	off := 0
	for _, c := range yuv.Components {
		grid := yuv.NewMacroblockGrid(g.GridCols(c), g.GridRows(c))
		coeffs := seg.Residuals.Plane(c).Coeffs

		need := 3*len(grid.MBs) + 2*len(coeffs)
		if len(payload)-off < need {
			return fmt.Errorf("%w: %s payload has %d of %d bytes", ErrInvalidStream, c, len(payload)-off, need)
		}

		for i := range grid.MBs {
			grid.MBs[i] = yuv.Macroblock{
				UseMV: payload[off]&flagUseMV != 0,
				MVX:   int8(payload[off+1]),
				MVY:   int8(payload[off+2]),
			}
			off += 3
		}
		for i := range coeffs {
			coeffs[i] = int16(binary.LittleEndian.Uint16(payload[off:]))
			off += 2
		}
		seg.Macroblocks[c.Index()] = grid
	}

	if off != len(payload) {
		return fmt.Errorf("%w: %d trailing payload bytes", ErrInvalidStream, len(payload)-off)
	}
	return nil
}

func readMarker(r *bufio.Reader) (c63.Marker, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, truncated("marker", err)
	}
	if b[0] != c63.MarkerPrefix {
		return 0, fmt.Errorf("%w: expected marker, got 0x%02x", ErrInvalidStream, b[0])
	}
	return c63.Marker(b[1]), nil
}

func truncated(section string, err error) error {
	return fmt.Errorf("%w: truncated %s: %v", ErrInvalidStream, section, err)
}
