package yuvfile

import "errors"

// ErrInvalidData is returned when the input ends in the middle of a picture.
var ErrInvalidData = errors.New("invalid picture data")
