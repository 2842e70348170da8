package c63stream

import "errors"

var (
	// ErrInvalidStream is returned when a stream does not follow the section layout.
	ErrInvalidStream = errors.New("invalid c63 stream")

	// ErrUnsupportedGeometry is returned when a picture size does not fit the
	// 16-bit size fields of a stream.
	ErrUnsupportedGeometry = errors.New("picture size not representable in a c63 stream")

	// ErrNotStarted is returned when a frame is written before Begin.
	ErrNotStarted = errors.New("stream not started")
)
