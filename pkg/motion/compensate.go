package motion

import (
	"github.com/user/c63/pkg/assert"
	"github.com/user/c63/pkg/yuv"
)

// Compensate builds cur.Predicted from the reconstructed planes of ref using
// the vectors stored in cur.
func Compensate(cur, ref *yuv.Frame, geoms [yuv.NumComponents]ComponentGeometry) {
	for _, cg := range geoms {
		CompensateComponent(
			cur.Macroblocks(cg.Component),
			cur.Predicted.Plane(cg.Component),
			ref.Recons.Plane(cg.Component),
			cg,
		)
	}
}

// CompensateComponent copies, for every macroblock with UseMV set, the
// reference block its vector points at into the predicted plane. Blocks
// without a vector are left untouched.
func CompensateComponent(mbs *yuv.MacroblockGrid, predicted, ref *yuv.Plane, cg ComponentGeometry) {
	assert.True(predicted.Width == cg.Width && predicted.Height == cg.Height && ref.Width == cg.Width && ref.Height == cg.Height,
		"%s planes do not match %dx%d", cg.Component, cg.Width, cg.Height)

	for mbY := 0; mbY < cg.Rows; mbY++ {
		for mbX := 0; mbX < cg.Cols; mbX++ {
			mb := mbs.At(mbX, mbY)
			if !mb.UseMV {
				continue
			}
			left, top := mbX*yuv.BlockSize, mbY*yuv.BlockSize
			src := ref.Block(left+int(mb.MVX), top+int(mb.MVY))
			predicted.Block(left, top).CopyFrom(src)
		}
	}
}
