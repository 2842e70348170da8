package mocks

import (
	"image"
	"sync"

	"github.com/user/c63/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Reconstructions map[int]image.Image
	Overlays        map[int]image.Image
	MotionFields    map[int][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:         enabled,
		Reconstructions: make(map[int]image.Image),
		Overlays:        make(map[int]image.Image),
		MotionFields:    make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveReconstruction(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reconstructions[index] = img
	return nil
}

func (m *DebugSink) SaveMotionOverlay(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Overlays[index] = img
	return nil
}

func (m *DebugSink) SaveMotionField(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MotionFields[index] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                       { return false }
func (m *NullSink) SaveReconstruction(index int, img image.Image) error { return nil }
func (m *NullSink) SaveMotionOverlay(index int, img image.Image) error  { return nil }
func (m *NullSink) SaveMotionField(index int, data []byte) error        { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
