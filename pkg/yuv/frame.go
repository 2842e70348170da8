package yuv

import "github.com/user/c63/pkg/assert"

// Frame is everything the encoder keeps for one input picture.
type Frame struct {
	Number   int
	Keyframe bool

	Orig      *Image // input picture
	Recons    *Image // decoder-side reconstruction
	Predicted *Image // motion compensated prediction

	Residuals *Coefficients

	mbs [NumComponents]*MacroblockGrid
}

// NewFrame wraps picture, which must match g, into a new frame with zeroed
// reconstruction, prediction and residual buffers.
func NewFrame(g Geometry, picture *Image) *Frame {
	assert.True(picture != nil && picture.Matches(g), "picture does not match padded geometry")

	f := &Frame{
		Orig:      picture,
		Recons:    NewImage(g),
		Predicted: NewImage(g),
		Residuals: NewCoefficients(g),
	}
	for _, c := range Components {
		f.mbs[c.Index()] = NewMacroblockGrid(g.GridCols(c), g.GridRows(c))
	}
	return f
}

// Macroblocks returns the macroblock grid of component c.
func (f *Frame) Macroblocks(c Component) *MacroblockGrid {
	return f.mbs[c.Index()]
}
