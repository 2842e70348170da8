package encoder

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is not positive
	// or exceeds c63.MaxDimension.
	ErrInvalidDimensions = errors.New("encoder: invalid picture dimensions")

	// ErrInvalidOptions is returned when a tunable is out of range.
	ErrInvalidOptions = errors.New("encoder: invalid options")

	// ErrGeometryMismatch is returned when a picture does not have the padded
	// geometry of the context.
	ErrGeometryMismatch = errors.New("encoder: picture does not match context geometry")
)
