// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/c63/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveReconstruction does nothing.
func (s *Sink) SaveReconstruction(index int, img image.Image) error {
	return nil
}

// SaveMotionOverlay does nothing.
func (s *Sink) SaveMotionOverlay(index int, img image.Image) error {
	return nil
}

// SaveMotionField does nothing.
func (s *Sink) SaveMotionField(index int, data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
