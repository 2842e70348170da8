package yuv

import "github.com/user/c63/pkg/assert"

// CoefficientPlane holds the quantized residual of one component.
//
// Each 8x8 block is stored as 64 contiguous zig-zag ordered values. The block
// whose top-left sample is (x, y) starts at y*Width + x*8, so a band of eight
// rows holds Width/8 consecutive blocks.
type CoefficientPlane struct {
	Coeffs []int16
	Width  int
	Height int
}

// NewCoefficientPlane allocates a zeroed coefficient plane.
func NewCoefficientPlane(width, height int) *CoefficientPlane {
	assert.True(width%BlockSize == 0 && height%BlockSize == 0,
		"coefficient plane %dx%d is not 8-aligned", width, height)
	return &CoefficientPlane{
		Coeffs: make([]int16, width*height),
		Width:  width,
		Height: height,
	}
}

// Block returns the 64 coefficients of the block at pixel position (x, y).
func (p *CoefficientPlane) Block(x, y int) []int16 {
	assert.True(x%BlockSize == 0 && y%BlockSize == 0 && x < p.Width && y < p.Height,
		"coefficient block (%d,%d) misaligned or outside %dx%d", x, y, p.Width, p.Height)
	off := y*p.Width + x*BlockSize
	return p.Coeffs[off : off+64 : off+64]
}

// Coefficients is the residual coefficient set of a frame.
type Coefficients struct {
	planes [NumComponents]*CoefficientPlane
}

// NewCoefficients allocates zeroed coefficient planes for g.
func NewCoefficients(g Geometry) *Coefficients {
	cs := &Coefficients{}
	for _, c := range Components {
		cs.planes[c.Index()] = NewCoefficientPlane(g.PlaneWidth(c), g.PlaneHeight(c))
	}
	return cs
}

// Plane returns the coefficient plane of component c.
func (cs *Coefficients) Plane(c Component) *CoefficientPlane {
	return cs.planes[c.Index()]
}
