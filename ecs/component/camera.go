package component

import "github.com/milk9111/starmaze/maze"

type EdgeFollowMode uint8

const (
	EdgeFollowOff EdgeFollowMode = iota
	EdgeFollowTouch
	EdgeFollowAlways
)

// Camera owns the single view transform. EdgeFraction is the share of the
// viewport width treated as the edge band; EdgeGain scales the pan.
type Camera struct {
	View         *maze.Camera
	EdgeFollow   EdgeFollowMode
	EdgeFraction float64
	EdgeGain     float64
}

var CameraComponent = NewComponent[Camera]()
