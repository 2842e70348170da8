package c63stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// Writer implements ports.FrameWriter as a c63 marker stream.
type Writer struct {
	w       *bufio.Writer
	enc     *SegmentEncoder
	geom    yuv.Geometry
	buf     []byte
	written int64
}

// NewWriter creates a Writer that writes the stream to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Begin writes SOI and records the tables every segment repeats.
func (w *Writer) Begin(header ports.StreamHeader) error {
	if err := CheckGeometry(header.Geometry); err != nil {
		return err
	}
	enc, err := NewSegmentEncoder(header.Quant)
	if err != nil {
		return err
	}
	w.enc = enc
	w.geom = header.Geometry
	return w.write(c63.SOI.Bytes())
}

// WriteFrame writes the segment of one frame.
func (w *Writer) WriteFrame(frame *yuv.Frame) (int, error) {
	if w.enc == nil {
		return 0, ErrNotStarted
	}
	w.buf = w.enc.AppendSegment(w.buf[:0], frame, w.geom)
	if err := w.write(w.buf); err != nil {
		return 0, fmt.Errorf("frame %d: %w", frame.Number, err)
	}
	return len(w.buf), nil
}

// End writes EOI and flushes.
func (w *Writer) End() error {
	if w.enc == nil {
		return ErrNotStarted
	}
	if err := w.write(c63.EOI.Bytes()); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flush stream: %w", err)
	}
	return w.enc.Close()
}

// Written returns the number of bytes handed to the underlying writer.
func (w *Writer) Written() int64 {
	return w.written
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("write stream: %w", err)
	}
	return nil
}

var _ ports.FrameWriter = (*Writer)(nil)
