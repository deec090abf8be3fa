package component

import "image/color"

// RenderStyle controls how the renderer draws a box.
type RenderStyle struct {
	Color  color.Color
	Filled bool
	Hidden bool
}

var RenderStyleComponent = NewComponent[RenderStyle]()
