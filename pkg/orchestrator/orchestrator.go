// Package orchestrator drives a stream of pictures through the encoder.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/c63/pkg/pipeline"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// Config contains the per-run settings of the orchestrator.
type Config struct {
	InputPath  string
	OutputPath string

	// MaxFrames stops the run after that many pictures; zero means all.
	MaxFrames int

	// Header is written before the first frame.
	Header ports.StreamHeader
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{}
}

// Orchestrator coordinates the execution of the encode loop.
type Orchestrator struct {
	reader       ports.PictureReader
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	inspectStage pipeline.Stage[pipeline.InspectInput, pipeline.InspectResult]
	writer       ports.FrameWriter
	recon        ports.PictureWriter
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator. recon may be nil when reconstructions
// are not written out.
func New(
	reader ports.PictureReader,
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	inspectStage pipeline.Stage[pipeline.InspectInput, pipeline.InspectResult],
	writer ports.FrameWriter,
	recon ports.PictureWriter,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		reader:       reader,
		encodeStage:  encodeStage,
		inspectStage: inspectStage,
		writer:       writer,
		recon:        recon,
		sink:         sink,
		logger:       logger,
	}
}

// Run encodes pictures until the reader is exhausted, the frame limit is
// reached or ctx is cancelled. Cancellation is checked between pictures; the
// stream is still closed so the frames already written stay readable.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := time.Now()
	g := config.Header.Geometry
	result := RunResult{
		Width:        g.Width,
		Height:       g.Height,
		PaddedWidth:  g.PlaneWidth(yuv.ComponentY),
		PaddedHeight: g.PlaneHeight(yuv.ComponentY),
	}

	o.logger.Info(l10n.F("Encoding %s (%dx%d, padded to %dx%d)",
		config.InputPath, result.Width, result.Height, result.PaddedWidth, result.PaddedHeight))

	if err := o.writer.Begin(config.Header); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return result, fmt.Errorf("begin stream: %w", err)
	}

	runErr := o.loop(ctx, config, &result)

	if err := o.writer.End(); err != nil && runErr == nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		runErr = fmt.Errorf("end stream: %w", err)
	}

	result.Elapsed = time.Since(start)
	if runErr != nil {
		return result, runErr
	}

	o.logger.Info(l10n.F("Encoded %d frames (%d keyframes), %d bytes", result.Frames, result.Keyframes, result.Bytes))
	return result, nil
}

func (o *Orchestrator) loop(ctx context.Context, config Config, result *RunResult) error {
	for config.MaxFrames <= 0 || result.Frames < config.MaxFrames {
		select {
		case <-ctx.Done():
			o.logger.Warn(l10n.F("Stopped after %d frames", result.Frames))
			return ctx.Err()
		default:
		}

		picture, err := o.reader.ReadPicture()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			o.logger.Error(l10n.F("Failed to read picture %d: %s", result.Frames, err))
			return fmt.Errorf("read picture %d: %w", result.Frames, err)
		}

		encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{Picture: picture})
		if err != nil {
			if ctx.Err() != nil {
				o.logger.Warn(l10n.F("Stopped after %d frames", result.Frames))
				return ctx.Err()
			}
			o.logger.Error(l10n.F("Failed to encode picture %d: %s", result.Frames, err))
			return fmt.Errorf("encode stage: %w", err)
		}
		frame := encoded.Frame

		n, err := o.writer.WriteFrame(frame)
		if err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return fmt.Errorf("write frame %d: %w", frame.Number, err)
		}

		if o.recon != nil {
			if err := o.recon.WritePicture(frame.Recons); err != nil {
				o.logger.Error(l10n.F("Failed to write reconstruction: %s", err))
				return fmt.Errorf("write reconstruction %d: %w", frame.Number, err)
			}
		}

		if o.sink.Enabled() {
			if _, err := o.inspectStage.Execute(ctx, pipeline.InspectInput{Frame: frame}); err != nil {
				o.logger.Warn(l10n.F("Failed to save debug output: %s", err))
			}
		}

		result.add(frame, encoded, n)
		o.logger.Debug(l10n.F("Frame %d written: %d bytes", frame.Number, n))
	}
	return nil
}

// RunResult contains the results of an encode run for summary generation.
type RunResult struct {
	// Geometry
	Width        int
	Height       int
	PaddedWidth  int
	PaddedHeight int

	// Output
	Frames    int
	Keyframes int
	Bytes     int64

	// Quality, summed over frames; see MeanPSNR.
	PSNRSum [yuv.NumComponents]float64

	// Motion search over inter frames
	InterFrames  int
	SearchBlocks int
	SearchSAD    int64

	Elapsed time.Duration
}

func (r *RunResult) add(frame *yuv.Frame, encoded pipeline.EncodeResult, n int) {
	r.Frames++
	r.Bytes += int64(n)
	if frame.Keyframe {
		r.Keyframes++
	} else {
		r.InterFrames++
		y := yuv.ComponentY.Index()
		r.SearchBlocks += encoded.Motion.Blocks[y]
		r.SearchSAD += int64(encoded.Motion.TotalSAD[y])
	}
	for i, p := range encoded.PSNR {
		r.PSNRSum[i] += capPSNR(p)
	}
}

// MaxPSNR stands in for the infinite PSNR of a lossless frame.
const MaxPSNR = 99.0

func capPSNR(p float64) float64 {
	if p > MaxPSNR {
		return MaxPSNR
	}
	return p
}

// MeanPSNR returns the mean reconstruction PSNR of component c in dB.
func (r RunResult) MeanPSNR(c yuv.Component) float64 {
	if r.Frames == 0 {
		return 0
	}
	return r.PSNRSum[c.Index()] / float64(r.Frames)
}

// MeanSAD returns the mean best luma SAD per searched macroblock.
func (r RunResult) MeanSAD() float64 {
	if r.SearchBlocks == 0 {
		return 0
	}
	return float64(r.SearchSAD) / float64(r.SearchBlocks)
}

// BitsPerPixel returns the coded size per raw luma sample.
func (r RunResult) BitsPerPixel() float64 {
	pixels := int64(r.Frames) * int64(r.Width) * int64(r.Height)
	if pixels == 0 {
		return 0
	}
	return float64(r.Bytes*8) / float64(pixels)
}

// EncodeFPS returns the throughput of the run.
func (r RunResult) EncodeFPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}
