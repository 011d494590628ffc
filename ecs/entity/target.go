package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
	"github.com/milk9111/starmaze/prefabs"
)

func NewTarget(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	start := cp.Vector{X: spec.Start.X, Y: spec.Start.Y}

	target := ecs.CreateEntity(w)
	if err := ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{
		Position: start,
	}); err != nil {
		return 0, errors.Wrap(err, "target: add transform")
	}

	if err := ecs.Add(w, target, component.TargetComponent.Kind(), &component.Target{
		Radius:         spec.Target.Radius,
		Step:           spec.Input.JoystickSpeed,
		State:          component.TargetIdle,
		Start:          start,
		IdleColor:      spec.Target.IdleColor.Or(colornames.Red),
		FollowingColor: spec.Target.FollowingColor.Or(colornames.Blue),
		BorderColor:    spec.Target.BorderColor.Or(colornames.Blue),
	}); err != nil {
		return 0, errors.Wrap(err, "target: add target")
	}

	if err := ecs.Add(w, target, component.MoveRequestComponent.Kind(), &component.MoveRequest{}); err != nil {
		return 0, errors.Wrap(err, "target: add move request")
	}

	if err := ecs.Add(w, target, component.TrailComponent.Kind(), &component.Trail{
		Path:    maze.NewTrail(spec.Trail.Capacity),
		Width:   spec.Trail.Width,
		Opacity: spec.Trail.Opacity,
		Color:   spec.Trail.Color.Or(colornames.Red),
		Rewind:  bounceRewind(spec),
	}); err != nil {
		return 0, errors.Wrap(err, "target: add trail")
	}

	if err := ecs.Add(w, target, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: component.LayerTarget,
	}); err != nil {
		return 0, errors.Wrap(err, "target: add render layer")
	}

	return target, nil
}

func bounceRewind(spec *prefabs.GameSpec) int {
	if !spec.BounceBack {
		return 0
	}
	if spec.Trail.Rewind <= 0 {
		return 5
	}
	return spec.Trail.Rewind
}
