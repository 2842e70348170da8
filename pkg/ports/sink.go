package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveReconstruction saves the reconstructed luma plane of a frame.
	SaveReconstruction(index int, img image.Image) error

	// SaveMotionOverlay saves the motion vector visualization of a frame.
	SaveMotionOverlay(index int, img image.Image) error

	// SaveMotionField saves the macroblock grid of a frame as JSON.
	SaveMotionField(index int, data []byte) error
}
