package system

import (
	"github.com/milk9111/starmaze/common"
	"github.com/milk9111/starmaze/control"
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

// CameraSystem keeps a moving target away from the viewport edges.
type CameraSystem struct {
	touchSeen func() bool
}

func NewCameraSystem(touchSeen func() bool) *CameraSystem {
	return &CameraSystem{touchSeen: touchSeen}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || !ready(w) {
		return
	}
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok || cam.View == nil {
		return
	}
	switch cam.EdgeFollow {
	case component.EdgeFollowOff:
		return
	case component.EdgeFollowTouch:
		if cs.touchSeen == nil || !cs.touchSeen() {
			return
		}
	}

	pos, target, ok := targetPosition(w)
	if !ok || target.State != component.TargetFollowing {
		return
	}
	control.EdgeFollow(cam.View, cam.View.WorldToScreen(pos), common.BaseWidth, common.BaseHeight, cam.EdgeFraction, cam.EdgeGain)
}
