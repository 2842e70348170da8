package yuv

import "github.com/user/c63/pkg/assert"

// Plane is one padded colour plane. The stride equals Width.
type Plane struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPlane allocates a zeroed plane. Both dimensions must be multiples of 8.
func NewPlane(width, height int) *Plane {
	assert.True(width > 0 && height > 0 && width%BlockSize == 0 && height%BlockSize == 0,
		"plane %dx%d is not 8-aligned", width, height)
	return &Plane{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
	}
}

// Block returns a view of the 8x8 block whose top-left sample is (x, y).
func (p *Plane) Block(x, y int) BlockView {
	return NewBlockView(p.Pix, x, y, p.Width)
}

// Image is a planar 4:2:0 picture at padded geometry.
type Image struct {
	planes [NumComponents]*Plane
}

// NewImage allocates a zeroed image for the given geometry.
func NewImage(g Geometry) *Image {
	img := &Image{}
	for _, c := range Components {
		img.planes[c.Index()] = NewPlane(g.PlaneWidth(c), g.PlaneHeight(c))
	}
	return img
}

// Plane returns the plane of component c.
func (img *Image) Plane(c Component) *Plane {
	return img.planes[c.Index()]
}

// Matches reports whether every plane of img has the padded size g describes.
func (img *Image) Matches(g Geometry) bool {
	for _, c := range Components {
		p := img.Plane(c)
		if p == nil || p.Width != g.PlaneWidth(c) || p.Height != g.PlaneHeight(c) || len(p.Pix) != p.Width*p.Height {
			return false
		}
	}
	return true
}
