package pipeline

import (
	"image"

	"github.com/user/c63/pkg/motion"
	"github.com/user/c63/pkg/yuv"
)

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput carries one picture into the encode stage.
type EncodeInput struct {
	Picture *yuv.Image
}

// EncodeResult describes the frame built from one picture.
type EncodeResult struct {
	Frame *yuv.Frame

	// Motion holds the search statistics; zero for keyframes.
	Motion motion.Stats

	// PSNR of the reconstruction against the original, per component, in dB.
	PSNR [yuv.NumComponents]float64
}

// =============================================================================
// Inspect Stage Types
// =============================================================================

// InspectInput carries an encoded frame into the inspect stage.
type InspectInput struct {
	Frame *yuv.Frame
}

// InspectResult holds the debug renderings of one frame.
type InspectResult struct {
	Reconstruction image.Image
	Overlay        image.Image
	Field          MotionField
}

// MotionField is the JSON form of the luma macroblock grid of a frame.
type MotionField struct {
	Frame    int            `json:"frame"`
	Keyframe bool           `json:"keyframe"`
	Cols     int            `json:"cols"`
	Rows     int            `json:"rows"`
	Vectors  []MotionVector `json:"vectors"`
}

// MotionVector is one macroblock entry of a MotionField.
type MotionVector struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	UseMV bool `json:"use_mv"`
	MVX   int  `json:"mvx"`
	MVY   int  `json:"mvy"`
}
