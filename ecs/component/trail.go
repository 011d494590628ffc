package component

import (
	"image/color"

	"github.com/milk9111/starmaze/maze"
)

type Trail struct {
	Path    *maze.Trail
	Width   float64 // screen pixels at zoom 1
	Opacity float64
	Color   color.Color
	// Rewind is how many points bounce-back retreats when the target is
	// stuck. Zero disables bounce-back.
	Rewind int
}

var TrailComponent = NewComponent[Trail]()
