package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/user/c63/pkg/adapters/logger"
	"github.com/user/c63/pkg/encoder"
	"github.com/user/c63/pkg/mocks"
	"github.com/user/c63/pkg/pipeline"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/stages/encode"
	"github.com/user/c63/pkg/yuv"
)

var errInvalid = errors.New("invalid picture data")

type fixture struct {
	enc     *encoder.Context
	stage   *encode.Stage
	reader  *mocks.PictureReader
	writer  *mocks.FrameWriter
	recon   *mocks.PictureWriter
	sink    *mocks.DebugSink
	inspect pipeline.StageFunc[pipeline.InspectInput, pipeline.InspectResult]

	inspected []int
}

func newFixture(t *testing.T, pictures int, debug bool) *fixture {
	t.Helper()
	enc, err := encoder.New(16, 16)
	if err != nil {
		t.Fatalf("encoder.New failed: %v", err)
	}
	f := &fixture{
		enc:    enc,
		stage:  encode.NewStage(enc, logger.NewNoop()),
		reader: &mocks.PictureReader{},
		writer: &mocks.FrameWriter{},
		recon:  &mocks.PictureWriter{},
		sink:   mocks.NewDebugSink(debug),
	}
	for i := 0; i < pictures; i++ {
		f.reader.Pictures = append(f.reader.Pictures, yuv.NewImage(enc.Geometry()))
	}
	f.inspect = func(ctx context.Context, input pipeline.InspectInput) (pipeline.InspectResult, error) {
		f.inspected = append(f.inspected, input.Frame.Number)
		return pipeline.InspectResult{}, nil
	}
	return f
}

func (f *fixture) orchestrator() *Orchestrator {
	return New(f.reader, f.stage, f.inspect, f.writer, f.recon, f.sink, logger.NewNoop())
}

func (f *fixture) config() Config {
	config := DefaultConfig()
	config.InputPath = "input.yuv"
	config.OutputPath = "output.c63"
	config.Header = f.stage.Header()
	return config
}

func TestOrchestrator_Run(t *testing.T) {
	f := newFixture(t, 3, false)

	result, err := f.orchestrator().Run(context.Background(), f.config())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Frames != 3 || result.Keyframes != 1 || result.InterFrames != 2 {
		t.Errorf("frames = %d, keyframes = %d, inter = %d", result.Frames, result.Keyframes, result.InterFrames)
	}
	if result.Bytes != 300 {
		t.Errorf("bytes = %d, want 300", result.Bytes)
	}
	if result.Width != 16 || result.PaddedWidth != 16 {
		t.Errorf("geometry = %dx%d padded %dx%d", result.Width, result.Height, result.PaddedWidth, result.PaddedHeight)
	}
	if result.SearchBlocks != 8 {
		t.Errorf("search blocks = %d, want 8", result.SearchBlocks)
	}

	if f.writer.Header == nil || f.writer.Header.Geometry != f.enc.Geometry() {
		t.Error("expected Begin with the encoder geometry")
	}
	if !f.writer.EndCalled {
		t.Error("expected End to be called")
	}
	want := []mocks.FrameCall{{Number: 0, Keyframe: true}, {Number: 1}, {Number: 2}}
	if len(f.writer.FrameCalls) != len(want) {
		t.Fatalf("frame calls = %v", f.writer.FrameCalls)
	}
	for i := range want {
		if f.writer.FrameCalls[i] != want[i] {
			t.Errorf("frame call %d = %+v, want %+v", i, f.writer.FrameCalls[i], want[i])
		}
	}

	if len(f.recon.Written) != 3 {
		t.Errorf("reconstructions written = %d, want 3", len(f.recon.Written))
	}
	if len(f.inspected) != 0 {
		t.Error("inspect stage ran with debug disabled")
	}
}

func TestOrchestrator_Run_FrameLimit(t *testing.T) {
	f := newFixture(t, 5, false)
	config := f.config()
	config.MaxFrames = 2

	result, err := f.orchestrator().Run(context.Background(), config)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Frames != 2 {
		t.Errorf("frames = %d, want 2", result.Frames)
	}
	if f.reader.Reads != 2 {
		t.Errorf("reads = %d, want 2", f.reader.Reads)
	}
}

func TestOrchestrator_Run_WithoutRecon(t *testing.T) {
	f := newFixture(t, 2, false)
	orch := New(f.reader, f.stage, f.inspect, f.writer, nil, f.sink, logger.NewNoop())

	result, err := orch.Run(context.Background(), f.config())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Frames != 2 {
		t.Errorf("frames = %d, want 2", result.Frames)
	}
}

func TestOrchestrator_Run_ReadError(t *testing.T) {
	f := newFixture(t, 1, false)
	pictures := f.reader.Pictures
	f.reader.ReadPictureFunc = func() (*yuv.Image, error) {
		if len(pictures) > 0 {
			img := pictures[0]
			pictures = pictures[1:]
			return img, nil
		}
		return nil, fmt.Errorf("%w: short read", errInvalid)
	}

	result, err := f.orchestrator().Run(context.Background(), f.config())
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if result.Frames != 1 {
		t.Errorf("frames = %d, want 1", result.Frames)
	}
	if !f.writer.EndCalled {
		t.Error("expected stream to be closed after a read error")
	}
}

func TestOrchestrator_Run_Cancelled(t *testing.T) {
	f := newFixture(t, 3, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.orchestrator().Run(ctx, f.config())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Frames != 0 || len(f.writer.FrameCalls) != 0 {
		t.Error("expected no frames after cancellation")
	}
	if !f.writer.EndCalled {
		t.Error("expected stream to be closed after cancellation")
	}
}

func TestOrchestrator_Run_CancelledBetweenPictures(t *testing.T) {
	f := newFixture(t, 5, false)

	ctx, cancel := context.WithCancel(context.Background())
	f.writer.WriteFrameFunc = func(frame *yuv.Frame) (int, error) {
		if frame.Number == 1 {
			cancel()
		}
		return 10, nil
	}

	result, err := f.orchestrator().Run(ctx, f.config())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Frames != 2 {
		t.Errorf("frames = %d, want 2", result.Frames)
	}
}

func TestOrchestrator_Run_BeginError(t *testing.T) {
	f := newFixture(t, 1, false)
	f.writer.BeginFunc = func(h ports.StreamHeader) error { return errors.New("disk full") }

	if _, err := f.orchestrator().Run(context.Background(), f.config()); err == nil {
		t.Fatal("expected error")
	}
	if f.reader.Reads != 0 {
		t.Error("expected no reads after Begin failed")
	}
}

func TestOrchestrator_Run_WriteError(t *testing.T) {
	f := newFixture(t, 3, false)
	f.writer.WriteFrameFunc = func(frame *yuv.Frame) (int, error) {
		return 0, errors.New("disk full")
	}

	result, err := f.orchestrator().Run(context.Background(), f.config())
	if err == nil {
		t.Fatal("expected error")
	}
	if result.Frames != 0 {
		t.Errorf("frames = %d, want 0", result.Frames)
	}
}

func TestOrchestrator_Run_EncodeError(t *testing.T) {
	f := newFixture(t, 1, false)
	f.reader.Pictures = []*yuv.Image{yuv.NewImage(yuv.NewGeometry(32, 32))}

	_, err := f.orchestrator().Run(context.Background(), f.config())
	if !errors.Is(err, encoder.ErrGeometryMismatch) {
		t.Fatalf("expected ErrGeometryMismatch, got %v", err)
	}
	if len(f.writer.FrameCalls) != 0 {
		t.Error("expected no frames written")
	}
}

func TestOrchestrator_Run_DebugOutput(t *testing.T) {
	f := newFixture(t, 2, true)
	record := f.inspect
	f.inspect = func(ctx context.Context, input pipeline.InspectInput) (pipeline.InspectResult, error) {
		record(ctx, input)
		return pipeline.InspectResult{}, errors.New("cannot save")
	}

	result, err := f.orchestrator().Run(context.Background(), f.config())
	if err != nil {
		t.Fatalf("debug failures must not abort the run: %v", err)
	}
	if result.Frames != 2 {
		t.Errorf("frames = %d, want 2", result.Frames)
	}
	if len(f.inspected) != 2 || f.inspected[0] != 0 || f.inspected[1] != 1 {
		t.Errorf("inspected = %v", f.inspected)
	}
}

func TestRunResult_Metrics(t *testing.T) {
	r := RunResult{
		Width:        10,
		Height:       10,
		Frames:       2,
		Bytes:        50,
		PSNRSum:      [3]float64{80, 90, 100},
		SearchBlocks: 4,
		SearchSAD:    100,
		Elapsed:      500 * time.Millisecond,
	}

	if got := r.MeanPSNR(yuv.ComponentY); got != 40 {
		t.Errorf("MeanPSNR = %v, want 40", got)
	}
	if got := r.MeanSAD(); got != 25 {
		t.Errorf("MeanSAD = %v, want 25", got)
	}
	if got := r.BitsPerPixel(); got != 2 {
		t.Errorf("BitsPerPixel = %v, want 2", got)
	}
	if got := r.EncodeFPS(); got != 4 {
		t.Errorf("EncodeFPS = %v, want 4", got)
	}

	var empty RunResult
	if empty.MeanPSNR(yuv.ComponentY) != 0 || empty.MeanSAD() != 0 || empty.BitsPerPixel() != 0 || empty.EncodeFPS() != 0 {
		t.Error("expected zero metrics for an empty run")
	}
}

func TestRunResult_CapsLosslessPSNR(t *testing.T) {
	f := newFixture(t, 1, false)

	result, err := f.orchestrator().Run(context.Background(), f.config())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// A black picture reconstructs exactly.
	if got := result.MeanPSNR(yuv.ComponentY); got != MaxPSNR {
		t.Errorf("MeanPSNR = %v, want %v", got, MaxPSNR)
	}
}
