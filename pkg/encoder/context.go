// Package encoder owns the encoder state: geometry, quantization tables and
// the two-slot frame history, and runs the per-picture pipeline.
package encoder

import (
	"fmt"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/motion"
	"github.com/user/c63/pkg/yuv"
)

// Context encodes a stream of pictures one at a time. It is not safe for
// concurrent use.
type Context struct {
	geom  yuv.Geometry
	opts  Options
	quant [yuv.NumComponents]dsp.QuantTable
	geoms [yuv.NumComponents]motion.ComponentGeometry

	// reference and current never alias; current moves into reference once
	// per picture.
	reference *yuv.Frame
	current   *yuv.Frame

	frameNum            int
	framesSinceKeyframe int

	lastMotion motion.Stats
}

// New creates a context for width x height pictures with DefaultOptions.
func New(width, height int) (*Context, error) {
	return NewWithOptions(width, height, DefaultOptions())
}

// NewWithOptions creates a context for width x height pictures.
func NewWithOptions(width, height int, opts Options) (*Context, error) {
	if width <= 0 || width > c63.MaxDimension {
		return nil, fmt.Errorf("%w: width %d not in [1, %d]", ErrInvalidDimensions, width, c63.MaxDimension)
	}
	if height <= 0 || height > c63.MaxDimension {
		return nil, fmt.Errorf("%w: height %d not in [1, %d]", ErrInvalidDimensions, height, c63.MaxDimension)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	geom := yuv.NewGeometry(width, height)
	geom.Validate()

	ctx := &Context{
		geom:  geom,
		opts:  opts,
		geoms: motion.Geometries(geom, opts.SearchRange),
	}
	ctx.quant[yuv.ComponentY] = BuildQuantTable(&c63.YQuantTable, opts.QP)
	ctx.quant[yuv.ComponentU] = BuildQuantTable(&c63.UVQuantTable, opts.QP)
	ctx.quant[yuv.ComponentV] = BuildQuantTable(&c63.UVQuantTable, opts.QP)
	return ctx, nil
}

// EncodeImage consumes one picture and returns the frame built from it.
//
// The previous frame becomes the reference. Unless the new frame is a
// keyframe, its macroblocks are searched against the reference
// reconstruction and the prediction is motion compensated; a keyframe keeps
// an all-zero prediction. The residual is then transformed and quantized,
// and the reconstruction the next frame will search is rebuilt from it.
func (c *Context) EncodeImage(picture *yuv.Image) (*yuv.Frame, error) {
	if picture == nil || !picture.Matches(c.geom) {
		return nil, ErrGeometryMismatch
	}

	c.reference = c.current
	c.current = nil

	keyframe := c.frameNum == 0 || c.framesSinceKeyframe == c.opts.KeyframeInterval
	if keyframe {
		c.framesSinceKeyframe = 0
	}

	frame := yuv.NewFrame(c.geom, picture)
	frame.Number = c.frameNum
	frame.Keyframe = keyframe
	c.current = frame

	c.lastMotion = motion.Stats{}
	if !keyframe {
		c.lastMotion = motion.Estimate(frame, c.reference, c.geoms)
		motion.Compensate(frame, c.reference, c.geoms)
	}

	for _, comp := range yuv.Components {
		q := &c.quant[comp.Index()]
		dsp.DCTQuantize(frame.Orig.Plane(comp), frame.Predicted.Plane(comp), frame.Residuals.Plane(comp), q)
		dsp.DequantizeIDCT(frame.Residuals.Plane(comp), frame.Predicted.Plane(comp), frame.Recons.Plane(comp), q)
	}

	c.frameNum++
	c.framesSinceKeyframe++
	return frame, nil
}

// Geometry returns the padded geometry of the context.
func (c *Context) Geometry() yuv.Geometry { return c.geom }

// Options returns the tunables the context was built with.
func (c *Context) Options() Options { return c.opts }

// QuantTable returns the quantization table of component comp.
func (c *Context) QuantTable(comp yuv.Component) *dsp.QuantTable {
	t := c.quant[comp.Index()]
	return &t
}

// Current returns the most recently encoded frame, or nil.
func (c *Context) Current() *yuv.Frame { return c.current }

// Reference returns the frame the current one was predicted from, or nil.
func (c *Context) Reference() *yuv.Frame { return c.reference }

// FrameNum returns the number of pictures encoded so far.
func (c *Context) FrameNum() int { return c.frameNum }

// MotionStats returns the motion search statistics of the last picture.
// They are zero for a keyframe.
func (c *Context) MotionStats() motion.Stats { return c.lastMotion }
