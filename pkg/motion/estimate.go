package motion

import (
	"math"

	"github.com/user/c63/pkg/assert"
	"github.com/user/c63/pkg/dsp"
	"github.com/user/c63/pkg/yuv"
)

// Stats summarizes one motion search.
type Stats struct {
	Blocks   [yuv.NumComponents]int
	TotalSAD [yuv.NumComponents]int
}

// Estimate searches every macroblock of every component of cur.Orig in the
// reconstructed planes of ref and stores the winning vectors in cur.
func Estimate(cur, ref *yuv.Frame, geoms [yuv.NumComponents]ComponentGeometry) Stats {
	var st Stats
	for i, cg := range geoms {
		st.Blocks[i], st.TotalSAD[i] = EstimateComponent(
			cur.Macroblocks(cg.Component),
			cur.Orig.Plane(cg.Component),
			ref.Recons.Plane(cg.Component),
			cg,
		)
	}
	return st
}

// EstimateComponent runs the search for one component and returns the
// number of macroblocks searched and the sum of their best SADs.
func EstimateComponent(mbs *yuv.MacroblockGrid, orig, ref *yuv.Plane, cg ComponentGeometry) (int, int) {
	assert.True(orig.Width == cg.Width && orig.Height == cg.Height && ref.Width == cg.Width && ref.Height == cg.Height,
		"%s planes do not match %dx%d", cg.Component, cg.Width, cg.Height)
	assert.True(mbs.Cols == cg.Cols && mbs.Rows == cg.Rows,
		"%s grid %dx%d does not match %dx%d", cg.Component, mbs.Cols, mbs.Rows, cg.Cols, cg.Rows)

	total := 0
	for mbY := 0; mbY < cg.Rows; mbY++ {
		for mbX := 0; mbX < cg.Cols; mbX++ {
			sad := searchBlock(mbs.At(mbX, mbY), mbX, mbY, orig, ref, cg)
			if sad != math.MaxInt {
				total += sad
			}
		}
	}
	return cg.Rows * cg.Cols, total
}

// searchBlock scans the clipped window in raster order and keeps the first
// candidate with the lowest SAD. It returns that SAD, or math.MaxInt when the
// window is empty and the vector stays at zero.
func searchBlock(mb *yuv.Macroblock, mbX, mbY int, orig, ref *yuv.Plane, cg ComponentGeometry) int {
	win := cg.SearchWindow(mbX, mbY)
	mx, my := mbX*yuv.BlockSize, mbY*yuv.BlockSize
	anchor := orig.Block(mx, my)

	best := math.MaxInt
	for y := win.Top; y < win.Bottom; y++ {
		for x := win.Left; x < win.Right; x++ {
			sad := dsp.SAD8x8(anchor, ref.Block(x, y))
			if sad < best {
				mb.MVX = int8(x - mx)
				mb.MVY = int8(y - my)
				best = sad
			}
		}
	}

	// No threshold against intra coding: a vector is always assumed cheaper.
	mb.UseMV = true
	return best
}
