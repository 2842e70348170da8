// Package summarizer provides summary generation for encode runs.
package summarizer

import "time"

// Summary contains all data collected during an encode run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source pictures
	Input InputInfo

	// Encoder settings
	Settings Settings

	// Coded output
	Output OutputInfo

	// Reconstruction quality and motion search
	Quality QualityInfo

	// Throughput
	Timing TimingInfo
}

// InputInfo describes the raw input sequence.
type InputInfo struct {
	Path         string
	Width        int
	Height       int
	PaddedWidth  int
	PaddedHeight int
}

// Settings contains the encoder configuration.
type Settings struct {
	QP               int
	SearchRange      int
	KeyframeInterval int
	Container        string
	FrameLimit       int // 0 = all pictures
}

// OutputInfo contains information about the coded output.
type OutputInfo struct {
	Path      string
	Frames    int
	Keyframes int
	Bytes     int64
	FileSize  int64 // including container overhead, 0 if unknown

	BitsPerPixel float64
}

// QualityInfo contains mean reconstruction PSNR per component in dB and the
// mean best luma SAD of the motion search.
type QualityInfo struct {
	PSNRY   float64
	PSNRU   float64
	PSNRV   float64
	MeanSAD float64
}

// TimingInfo contains timing measurements.
type TimingInfo struct {
	ElapsedMs int
	FPS       float64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithSettings sets encoder settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets coded output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithQuality sets quality information.
func (b *Builder) WithQuality(quality QualityInfo) *Builder {
	b.summary.Quality = quality
	return b
}

// WithTiming sets timing information.
func (b *Builder) WithTiming(elapsed time.Duration, fps float64) *Builder {
	b.summary.Timing = TimingInfo{
		ElapsedMs: int(elapsed.Milliseconds()),
		FPS:       fps,
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
