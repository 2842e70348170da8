// Package inspect implements the debug stage that renders what the encoder
// decided for each frame: its reconstruction and its motion field.
package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"

	"github.com/user/c63/pkg/pipeline"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// DefaultScale is the upscale factor of the motion overlay.
const DefaultScale = 4

var (
	vectorColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	headColor   = color.RGBA{R: 255, G: 210, B: 64, A: 255}
	gridColor   = color.RGBA{R: 64, G: 160, B: 255, A: 160}
)

// Stage renders debug output for encoded frames.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
	geom     yuv.Geometry
	scale    int
}

// NewStage creates a new inspect stage for frames of geometry geom.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger, geom yuv.Geometry, scale int) *Stage {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("inspect"),
		geom:     geom,
		scale:    scale,
	}
}

// Execute renders and saves the debug output of one frame. It does nothing
// when the sink is disabled.
func (s *Stage) Execute(ctx context.Context, input pipeline.InspectInput) (pipeline.InspectResult, error) {
	if !s.sink.Enabled() {
		return pipeline.InspectResult{}, nil
	}

	frame := input.Frame
	result := pipeline.InspectResult{
		Reconstruction: s.luma(frame.Recons.Plane(yuv.ComponentY)),
		Field:          Field(frame),
	}
	result.Overlay = s.overlay(result.Reconstruction, frame)

	if err := s.sink.SaveReconstruction(frame.Number, result.Reconstruction); err != nil {
		return result, fmt.Errorf("save reconstruction %d: %w", frame.Number, err)
	}
	if err := s.sink.SaveMotionOverlay(frame.Number, result.Overlay); err != nil {
		return result, fmt.Errorf("save motion overlay %d: %w", frame.Number, err)
	}
	data, err := json.MarshalIndent(result.Field, "", "  ")
	if err != nil {
		return result, fmt.Errorf("marshal motion field %d: %w", frame.Number, err)
	}
	if err := s.sink.SaveMotionField(frame.Number, data); err != nil {
		return result, fmt.Errorf("save motion field %d: %w", frame.Number, err)
	}

	s.logger.Debug("Saved debug output for frame %d", frame.Number)
	return result, nil
}

// luma crops the padded plane back to the picture size.
func (s *Stage) luma(p *yuv.Plane) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.geom.Width, s.geom.Height))
	for y := 0; y < s.geom.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+s.geom.Width], p.Pix[y*p.Width:])
	}
	return img
}

// overlay draws one arrow per luma macroblock from its anchor centre to the
// centre of the block it is predicted from. Keyframes get the block grid.
func (s *Stage) overlay(base image.Image, frame *yuv.Frame) image.Image {
	w, h := s.geom.Width*s.scale, s.geom.Height*s.scale
	canvas := s.renderer.CreateCanvas(w, h, color.Black)
	canvas.DrawImage(s.renderer.ResizeImage(base, w, h), 0, 0)

	mbs := frame.Macroblocks(yuv.ComponentY)
	block := yuv.BlockSize * s.scale
	for mbY := 0; mbY < mbs.Rows; mbY++ {
		for mbX := 0; mbX < mbs.Cols; mbX++ {
			x0, y0 := mbX*block, mbY*block
			if x0 >= w || y0 >= h {
				continue
			}
			mb := mbs.At(mbX, mbY)
			if !mb.UseMV {
				canvas.DrawRectStroke(x0, y0, block, block, gridColor, 1)
				continue
			}
			if mb.MVX == 0 && mb.MVY == 0 {
				continue
			}
			cx, cy := x0+block/2, y0+block/2
			tx, ty := cx+int(mb.MVX)*s.scale, cy+int(mb.MVY)*s.scale
			canvas.DrawLine(cx, cy, tx, ty, vectorColor, 1.5)
			canvas.DrawPoint(tx, ty, 2, headColor)
		}
	}
	return canvas.ToImage()
}

// Field returns the luma motion field of frame.
func Field(frame *yuv.Frame) pipeline.MotionField {
	mbs := frame.Macroblocks(yuv.ComponentY)
	field := pipeline.MotionField{
		Frame:    frame.Number,
		Keyframe: frame.Keyframe,
		Cols:     mbs.Cols,
		Rows:     mbs.Rows,
		Vectors:  make([]pipeline.MotionVector, 0, len(mbs.MBs)),
	}
	for mbY := 0; mbY < mbs.Rows; mbY++ {
		for mbX := 0; mbX < mbs.Cols; mbX++ {
			mb := mbs.At(mbX, mbY)
			field.Vectors = append(field.Vectors, pipeline.MotionVector{
				X:     mbX,
				Y:     mbY,
				UseMV: mb.UseMV,
				MVX:   int(mb.MVX),
				MVY:   int(mb.MVY),
			})
		}
	}
	return field
}
