package entity

import (
	"github.com/pkg/errors"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
	"github.com/milk9111/starmaze/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	zoom := spec.Camera.Zoom
	if zoom == 0 {
		zoom = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		View:         maze.NewCamera(zoom, spec.Camera.MinZoom, spec.Camera.MaxZoom),
		EdgeFollow:   EdgeFollowMode(spec.Camera.EdgeFollow),
		EdgeFraction: spec.Camera.EdgeFraction,
		EdgeGain:     spec.Camera.EdgeGain,
	}); err != nil {
		return 0, errors.Wrap(err, "camera: add camera component")
	}
	return camera, nil
}

// CameraOf returns the world's camera view.
func CameraOf(w *ecs.World) (*maze.Camera, bool) {
	_, c, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok || c.View == nil {
		return nil, false
	}
	return c.View, true
}

func EdgeFollowMode(m prefabs.EdgeFollowMode) component.EdgeFollowMode {
	switch m {
	case prefabs.EdgeFollowOff:
		return component.EdgeFollowOff
	case prefabs.EdgeFollowAlways:
		return component.EdgeFollowAlways
	default:
		return component.EdgeFollowTouch
	}
}
