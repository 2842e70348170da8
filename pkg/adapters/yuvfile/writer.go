package yuvfile

import (
	"fmt"
	"io"

	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// Writer writes pictures in the layout Reader reads, cropping away padding.
type Writer struct {
	w        io.Writer
	geom     yuv.Geometry
	buf      []byte
	pictures int
}

// NewWriter creates a Writer over w for pictures of geometry geom.
func NewWriter(w io.Writer, geom yuv.Geometry) *Writer {
	return &Writer{
		w:    w,
		geom: geom,
		buf:  make([]byte, geom.RawSize(yuv.ComponentY)),
	}
}

// WritePicture writes the raw area of every plane of img.
func (w *Writer) WritePicture(img *yuv.Image) error {
	if !img.Matches(w.geom) {
		return fmt.Errorf("write picture %d: geometry mismatch", w.pictures)
	}

	for _, c := range yuv.Components {
		raw := w.buf[:w.geom.RawSize(c)]
		crop(raw, img.Plane(c), w.geom.RawWidth(c), w.geom.RawHeight(c))
		if _, err := w.w.Write(raw); err != nil {
			return fmt.Errorf("write picture %d %s plane: %w", w.pictures, c, err)
		}
	}

	w.pictures++
	return nil
}

func crop(raw []byte, p *yuv.Plane, w, h int) {
	for y := 0; y < h; y++ {
		start := y * w
		if start >= len(raw) {
			return
		}
		end := min(start+w, len(raw))
		copy(raw[start:end], p.Pix[y*p.Width:])
	}
}

var _ ports.PictureWriter = (*Writer)(nil)
