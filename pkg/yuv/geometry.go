package yuv

import "github.com/user/c63/pkg/assert"

// Chroma to luma sample ratio on each axis for 4:2:0 (numerator over
// denominator, per component).
var (
	sizeX = [NumComponents]int{2, 1, 1}
	sizeY = [NumComponents]int{2, 1, 1}
)

// Geometry describes the raw and padded dimensions of every plane and the
// macroblock grid laid over it. It never changes once computed.
type Geometry struct {
	Width  int // raw luma width
	Height int // raw luma height

	PadW [NumComponents]int
	PadH [NumComponents]int

	// Luma macroblock grid. Chroma grids are half of this on each axis.
	MBCols int
	MBRows int
}

// NewGeometry computes padded geometry for a width x height picture.
// Luma is padded to a multiple of 16, chroma to a multiple of 8 at the
// chroma resolution. Both dimensions must be positive.
func NewGeometry(width, height int) Geometry {
	assert.True(width > 0 && height > 0, "non-positive geometry %dx%d", width, height)

	g := Geometry{Width: width, Height: height}
	for _, c := range Components {
		i := c.Index()
		if c == ComponentY {
			g.PadW[i] = ceilDiv(width, 16) * 16
			g.PadH[i] = ceilDiv(height, 16) * 16
			continue
		}
		g.PadW[i] = ceilDiv(width*sizeX[i], sizeX[ComponentY]*8) * 8
		g.PadH[i] = ceilDiv(height*sizeY[i], sizeY[ComponentY]*8) * 8
	}
	g.MBCols = g.PadW[ComponentY] / 8
	g.MBRows = g.PadH[ComponentY] / 8
	return g
}

// PlaneWidth returns the padded width of component c.
func (g Geometry) PlaneWidth(c Component) int { return g.PadW[c.Index()] }

// PlaneHeight returns the padded height of component c.
func (g Geometry) PlaneHeight(c Component) int { return g.PadH[c.Index()] }

// GridCols returns the number of macroblock columns of component c.
func (g Geometry) GridCols(c Component) int {
	if c.IsChroma() {
		return g.MBCols / 2
	}
	return g.MBCols
}

// GridRows returns the number of macroblock rows of component c.
func (g Geometry) GridRows(c Component) int {
	if c.IsChroma() {
		return g.MBRows / 2
	}
	return g.MBRows
}

// RawWidth returns the unpadded width of component c in the input stream.
func (g Geometry) RawWidth(c Component) int {
	i := c.Index()
	return ceilDiv(g.Width*sizeX[i], sizeX[ComponentY])
}

// RawHeight returns the unpadded height of component c in the input stream.
func (g Geometry) RawHeight(c Component) int {
	i := c.Index()
	return ceilDiv(g.Height*sizeY[i], sizeY[ComponentY])
}

// RawSize returns the number of bytes component c occupies in one raw
// picture: width*height for luma, (width*height)/4 for each chroma plane.
func (g Geometry) RawSize(c Component) int {
	if c.IsChroma() {
		return (g.Width * g.Height) / 4
	}
	return g.Width * g.Height
}

// RawPictureSize returns the size in bytes of one raw 4:2:0 picture.
func (g Geometry) RawPictureSize() int {
	return g.RawSize(ComponentY) + g.RawSize(ComponentU) + g.RawSize(ComponentV)
}

// Validate panics if the padded planes and grids disagree.
func (g Geometry) Validate() {
	for _, c := range Components {
		w, h := g.PlaneWidth(c), g.PlaneHeight(c)
		assert.True(w%8 == 0 && h%8 == 0, "%s plane %dx%d not 8-aligned", c, w, h)
		assert.True(w/8 == g.GridCols(c) && h/8 == g.GridRows(c),
			"%s grid %dx%d does not cover plane %dx%d", c, g.GridCols(c), g.GridRows(c), w, h)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
