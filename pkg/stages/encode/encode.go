// Package encode implements the per-picture encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/encoder"
	"github.com/user/c63/pkg/pipeline"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// Stage feeds pictures through an encoder.Context one at a time.
type Stage struct {
	encoder *encoder.Context
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(enc *encoder.Context, logger ports.Logger) *Stage {
	return &Stage{
		encoder: enc,
		logger:  logger.WithComponent("encoder"),
	}
}

// Header returns the stream header matching the encoder configuration.
func (s *Stage) Header() ports.StreamHeader {
	h := ports.StreamHeader{Geometry: s.encoder.Geometry()}
	for _, c := range yuv.Components {
		h.Quant[c.Index()] = *s.encoder.QuantTable(c)
	}
	return h
}

// Execute encodes one picture.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	select {
	case <-ctx.Done():
		return pipeline.EncodeResult{}, ctx.Err()
	default:
	}

	frame, err := s.encoder.EncodeImage(input.Picture)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("encode picture %d: %w", s.encoder.FrameNum(), err)
	}

	result := pipeline.EncodeResult{
		Frame:  frame,
		Motion: s.encoder.MotionStats(),
	}
	for _, c := range yuv.Components {
		result.PSNR[c.Index()] = dsp.PSNR(frame.Orig.Plane(c).Pix, frame.Recons.Plane(c).Pix)
	}

	if frame.Keyframe {
		s.logger.Debug("Frame %d: keyframe, PSNR Y %.2f dB", frame.Number, result.PSNR[yuv.ComponentY])
	} else {
		y := yuv.ComponentY.Index()
		s.logger.Debug("Frame %d: %d blocks searched, SAD %d, PSNR Y %.2f dB",
			frame.Number, result.Motion.Blocks[y], result.Motion.TotalSAD[y], result.PSNR[y])
	}

	return result, nil
}
