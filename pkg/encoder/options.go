package encoder

import (
	"fmt"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/dsp"
)

// Options holds the encoder tunables.
type Options struct {
	QP               int // quality parameter, larger is coarser
	SearchRange      int // luma motion search range in samples
	KeyframeInterval int // frames between keyframes
}

// DefaultOptions returns qp 25, search range 16 and a keyframe every 100 frames.
func DefaultOptions() Options {
	return Options{
		QP:               c63.DefaultQP,
		SearchRange:      16,
		KeyframeInterval: 100,
	}
}

// Validate checks that every tunable is in range. Vectors are stored as
// int8, which bounds the search range at 128.
func (o Options) Validate() error {
	if o.QP < 1 || o.QP > 255 {
		return fmt.Errorf("%w: qp %d not in [1, 255]", ErrInvalidOptions, o.QP)
	}
	if o.SearchRange < 1 || o.SearchRange > 128 {
		return fmt.Errorf("%w: search range %d not in [1, 128]", ErrInvalidOptions, o.SearchRange)
	}
	if o.KeyframeInterval < 1 {
		return fmt.Errorf("%w: keyframe interval %d must be positive", ErrInvalidOptions, o.KeyframeInterval)
	}
	return nil
}

// BuildQuantTable divides every entry of def by qp/10, truncating. Entries
// that would truncate to zero are kept at 1 so the table stays a usable
// divisor at any qp. The divisor itself is not truncated: qp 25 divides by
// 2.5, not 2.
func BuildQuantTable(def *[64]uint8, qp int) dsp.QuantTable {
	var q dsp.QuantTable
	scale := float64(qp) / 10
	for i, v := range def {
		e := int(float64(v) / scale)
		if e < 1 {
			e = 1
		}
		if e > 255 {
			e = 255
		}
		q[i] = uint8(e)
	}
	return q
}
