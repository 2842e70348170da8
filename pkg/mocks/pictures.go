package mocks

import (
	"io"

	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// PictureReader is a mock implementation of ports.PictureReader that serves
// a fixed list of pictures and then io.EOF.
type PictureReader struct {
	Pictures []*yuv.Image

	// ReadPictureFunc overrides the list when set.
	ReadPictureFunc func() (*yuv.Image, error)

	Reads int
}

func (m *PictureReader) ReadPicture() (*yuv.Image, error) {
	m.Reads++
	if m.ReadPictureFunc != nil {
		return m.ReadPictureFunc()
	}
	if len(m.Pictures) == 0 {
		return nil, io.EOF
	}
	img := m.Pictures[0]
	m.Pictures = m.Pictures[1:]
	return img, nil
}

var _ ports.PictureReader = (*PictureReader)(nil)

// PictureWriter is a mock implementation of ports.PictureWriter.
type PictureWriter struct {
	WritePictureFunc func(img *yuv.Image) error

	Written []*yuv.Image
}

func (m *PictureWriter) WritePicture(img *yuv.Image) error {
	m.Written = append(m.Written, img)
	if m.WritePictureFunc != nil {
		return m.WritePictureFunc(img)
	}
	return nil
}

var _ ports.PictureWriter = (*PictureWriter)(nil)

// FrameWriter is a mock implementation of ports.FrameWriter.
type FrameWriter struct {
	BeginFunc      func(header ports.StreamHeader) error
	WriteFrameFunc func(frame *yuv.Frame) (int, error)
	EndFunc        func() error

	// Recorded calls for verification
	Header     *ports.StreamHeader
	FrameCalls []FrameCall
	EndCalled  bool
}

// FrameCall records a call to WriteFrame.
type FrameCall struct {
	Number   int
	Keyframe bool
}

func (m *FrameWriter) Begin(header ports.StreamHeader) error {
	m.Header = &header
	if m.BeginFunc != nil {
		return m.BeginFunc(header)
	}
	return nil
}

func (m *FrameWriter) WriteFrame(frame *yuv.Frame) (int, error) {
	m.FrameCalls = append(m.FrameCalls, FrameCall{Number: frame.Number, Keyframe: frame.Keyframe})
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(frame)
	}
	return 100, nil
}

func (m *FrameWriter) End() error {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

var _ ports.FrameWriter = (*FrameWriter)(nil)
