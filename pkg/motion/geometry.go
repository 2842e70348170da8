// Package motion implements exhaustive block-matching motion estimation and
// the motion compensation that turns its vectors into a prediction.
package motion

import "github.com/user/c63/pkg/yuv"

// ComponentGeometry is everything the search needs to know about one colour
// component: plane size, grid size and effective search range.
type ComponentGeometry struct {
	Component yuv.Component
	Width     int
	Height    int
	Cols      int
	Rows      int
	Range     int
}

// Geometries returns the per-component descriptors for g. Chroma planes
// search half the configured range.
func Geometries(g yuv.Geometry, searchRange int) [yuv.NumComponents]ComponentGeometry {
	var out [yuv.NumComponents]ComponentGeometry
	for i, c := range yuv.Components {
		r := searchRange
		if c.IsChroma() {
			r /= 2
		}
		out[i] = ComponentGeometry{
			Component: c,
			Width:     g.PlaneWidth(c),
			Height:    g.PlaneHeight(c),
			Cols:      g.GridCols(c),
			Rows:      g.GridRows(c),
			Range:     r,
		}
	}
	return out
}

// Window is a half-open rectangle of candidate top-left positions.
type Window struct {
	Left, Top, Right, Bottom int
}

// SearchWindow returns the candidate window for the macroblock at grid
// position (mbX, mbY). Each side is clamped on its own so the 8x8 candidate
// never leaves the plane; a window near an edge gets narrower, it is never
// re-centred.
func (cg ComponentGeometry) SearchWindow(mbX, mbY int) Window {
	w := Window{
		Left:   mbX*yuv.BlockSize - cg.Range,
		Top:    mbY*yuv.BlockSize - cg.Range,
		Right:  mbX*yuv.BlockSize + cg.Range,
		Bottom: mbY*yuv.BlockSize + cg.Range,
	}
	if w.Left < 0 {
		w.Left = 0
	}
	if w.Top < 0 {
		w.Top = 0
	}
	if w.Right > cg.Width-yuv.BlockSize {
		w.Right = cg.Width - yuv.BlockSize
	}
	if w.Bottom > cg.Height-yuv.BlockSize {
		w.Bottom = cg.Height - yuv.BlockSize
	}
	return w
}
