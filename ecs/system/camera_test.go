package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/milk9111/starmaze/ecs/component"
)

func TestCameraEdgeFollowModes(t *testing.T) {
	cases := []struct {
		name      string
		mode      component.EdgeFollowMode
		touchSeen bool
		moves     bool
	}{
		{"off", component.EdgeFollowOff, true, false},
		{"touch without touch", component.EdgeFollowTouch, false, false},
		{"touch after touch", component.EdgeFollowTouch, true, true},
		{"always", component.EdgeFollowAlways, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := readyWorld(t, pocketGrid(t, 0, 99))
			view := addCamera(t, w, tc.mode)
			p := addTarget(t, w, cp.Vector{X: 10, Y: 540}, 5, 0)
			p.target.State = component.TargetFollowing

			NewCameraSystem(func() bool { return tc.touchSeen }).Update(w)

			if tc.moves {
				assert.Greater(t, view.Offset().X, 0.0, "pans toward the left edge target")
			} else {
				assert.Equal(t, cp.Vector{}, view.Offset())
			}
		})
	}
}

func TestCameraIgnoresIdleTarget(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 0, 99))
	view := addCamera(t, w, component.EdgeFollowAlways)
	addTarget(t, w, cp.Vector{X: 10, Y: 540}, 5, 0)

	NewCameraSystem(nil).Update(w)

	assert.Equal(t, cp.Vector{}, view.Offset())
}
