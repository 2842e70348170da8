// Package ports defines interfaces for external dependencies.
package ports

import (
	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/yuv"
)

// PictureReader abstracts the source of raw 4:2:0 pictures.
type PictureReader interface {
	// ReadPicture returns the next picture laid out in padded planes.
	// It returns io.EOF when the source ends cleanly at a picture boundary.
	ReadPicture() (*yuv.Image, error)
}

// PictureWriter abstracts the destination of reconstructed pictures.
type PictureWriter interface {
	// WritePicture writes a picture cropped back to its raw geometry.
	WritePicture(img *yuv.Image) error
}

// StreamHeader carries the values a coded stream needs before the first frame.
type StreamHeader struct {
	Geometry yuv.Geometry
	Quant    [yuv.NumComponents]dsp.QuantTable
}

// FrameWriter abstracts the coded output container.
type FrameWriter interface {
	// Begin writes the stream preamble.
	Begin(header StreamHeader) error

	// WriteFrame writes one encoded frame and returns the number of bytes written.
	WriteFrame(frame *yuv.Frame) (int, error)

	// End writes the stream trailer and flushes buffered output.
	End() error
}
