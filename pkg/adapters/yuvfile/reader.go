// Package yuvfile reads and writes raw planar 4:2:0 pictures: the Y plane
// followed by the U and V planes, each stored row by row at its raw width.
package yuvfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// Reader reads consecutive pictures of a fixed geometry.
type Reader struct {
	r        io.Reader
	geom     yuv.Geometry
	buf      []byte
	pictures int
}

// NewReader creates a Reader over r for pictures of geometry geom.
func NewReader(r io.Reader, geom yuv.Geometry) *Reader {
	return &Reader{
		r:    r,
		geom: geom,
		buf:  make([]byte, geom.RawSize(yuv.ComponentY)),
	}
}

// ReadPicture reads the next picture into freshly allocated padded planes.
// Padding samples are zero. A source that ends exactly at a picture boundary
// yields io.EOF; one that ends inside a picture yields ErrInvalidData.
func (r *Reader) ReadPicture() (*yuv.Image, error) {
	img := yuv.NewImage(r.geom)

	for _, c := range yuv.Components {
		raw := r.buf[:r.geom.RawSize(c)]
		n, err := io.ReadFull(r.r, raw)
		if err != nil {
			if c == yuv.ComponentY && n == 0 && errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: picture %d %s plane has %d of %d bytes",
					ErrInvalidData, r.pictures, c, n, len(raw))
			}
			return nil, fmt.Errorf("read picture %d: %w", r.pictures, err)
		}
		expand(img.Plane(c), raw, r.geom.RawWidth(c), r.geom.RawHeight(c))
	}

	r.pictures++
	return img, nil
}

// Pictures returns the number of complete pictures read so far.
func (r *Reader) Pictures() int {
	return r.pictures
}

// expand copies raw rows of width w into the padded plane. The raw chroma
// size rounds down while its row count rounds up, so the last row of an odd
// sized picture may be short.
func expand(p *yuv.Plane, raw []byte, w, h int) {
	for y := 0; y < h; y++ {
		start := y * w
		if start >= len(raw) {
			return
		}
		end := min(start+w, len(raw))
		copy(p.Pix[y*p.Width:], raw[start:end])
	}
}

var _ ports.PictureReader = (*Reader)(nil)
