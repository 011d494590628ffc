package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

type TargetState uint8

const (
	TargetIdle TargetState = iota
	TargetFollowing
)

func (s TargetState) String() string {
	if s == TargetFollowing {
		return "following"
	}
	return "idle"
}

// Target is the player-driven marker. Step is the fallback step length the
// motion resolver uses when the requested move is blocked.
type Target struct {
	Radius         float64
	Step           float64
	State          TargetState
	Following      bool // set on first movement, never cleared
	Start          cp.Vector
	IdleColor      color.Color
	FollowingColor color.Color
	BorderColor    color.Color
}

var TargetComponent = NewComponent[Target]()
