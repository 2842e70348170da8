// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/c63/pkg/ports"
)

// Sink saves debug output to files under a base directory:
//
//	recons/frame-0000.png   reconstructed luma
//	motion/frame-0000.png   motion vector overlay
//	motion/frame-0000.json  macroblock grid
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveReconstruction saves the reconstructed luma plane as PNG.
func (s *Sink) SaveReconstruction(index int, img image.Image) error {
	return s.savePNG("recons", index, img)
}

// SaveMotionOverlay saves the motion vector overlay as PNG.
func (s *Sink) SaveMotionOverlay(index int, img image.Image) error {
	return s.savePNG("motion", index, img)
}

// SaveMotionField saves the macroblock grid as JSON.
func (s *Sink) SaveMotionField(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "motion")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.json", index))
	return s.fs.WriteFile(path, data)
}

func (s *Sink) savePNG(kind string, index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, kind)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s frame %d: %w", kind, index, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
