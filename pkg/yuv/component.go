// Package yuv holds the planar picture and macroblock data model shared by
// the motion search, the transform engine and the encoder.
package yuv

import "github.com/user/c63/pkg/assert"

// Component identifies one colour plane of a 4:2:0 picture.
type Component int

const (
	ComponentY Component = iota
	ComponentU
	ComponentV
)

// NumComponents is the number of colour planes in a picture.
const NumComponents = 3

// Components lists every colour component in storage order.
var Components = [NumComponents]Component{ComponentY, ComponentU, ComponentV}

// Valid reports whether c is one of Y, U or V.
func (c Component) Valid() bool {
	return c >= ComponentY && c <= ComponentV
}

// IsChroma reports whether c is a chroma component.
func (c Component) IsChroma() bool {
	return c == ComponentU || c == ComponentV
}

// String returns the plane name.
func (c Component) String() string {
	switch c {
	case ComponentY:
		return "Y"
	case ComponentU:
		return "U"
	case ComponentV:
		return "V"
	default:
		return "invalid"
	}
}

// Index returns c as an array index, panicking on an out of range value.
func (c Component) Index() int {
	assert.True(c.Valid(), "invalid colour component %d", int(c))
	return int(c)
}
