package entity

import (
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/prefabs"
)

// ApplyGameSpec pushes reloaded tuning into live entities. Positions,
// the trail contents and the endpoint latch are left alone.
func ApplyGameSpec(w *ecs.World, spec *prefabs.GameSpec) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, c *component.Camera) {
		c.View.SetBounds(spec.Camera.MinZoom, spec.Camera.MaxZoom)
		c.EdgeFollow = EdgeFollowMode(spec.Camera.EdgeFollow)
		c.EdgeFraction = spec.Camera.EdgeFraction
		c.EdgeGain = spec.Camera.EdgeGain
	})

	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TrailComponent.Kind(), func(_ ecs.Entity, t *component.Target, tr *component.Trail) {
		t.Radius = spec.Target.Radius
		t.Step = spec.Input.JoystickSpeed
		t.IdleColor = spec.Target.IdleColor.Or(t.IdleColor)
		t.FollowingColor = spec.Target.FollowingColor.Or(t.FollowingColor)
		t.BorderColor = spec.Target.BorderColor.Or(t.BorderColor)

		tr.Path.Resize(spec.Trail.Capacity)
		tr.Width = spec.Trail.Width
		tr.Opacity = spec.Trail.Opacity
		tr.Color = spec.Trail.Color.Or(tr.Color)
		tr.Rewind = bounceRewind(spec)
	})

	ecs.ForEach(w, component.CompletionComponent.Kind(), func(_ ecs.Entity, c *component.Completion) {
		c.FadeStep = orFloat(spec.Completion.FadeStep, c.FadeStep)
		c.HoldTicks = spec.Completion.HoldTicks
		c.Message = spec.Completion.Message
		c.BobAmplitude = spec.Completion.BobAmplitude
		c.BobSpeed = spec.Completion.BobSpeed
	})

	ecs.ForEach(w, component.EndpointComponent.Kind(), func(_ ecs.Entity, e *component.Endpoint) {
		e.Color = spec.Endpoint.Color.Or(e.Color)
	})
}

// ApplyHotspots replaces the hotspot set after a reload.
func ApplyHotspots(w *ecs.World, spec *prefabs.HotspotsSpec) {
	ecs.ForEach(w, component.HotspotsComponent.Kind(), func(_ ecs.Entity, h *component.Hotspots) {
		h.Items = BuildHotspots(spec)
	})
}
