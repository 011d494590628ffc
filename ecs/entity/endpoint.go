package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
	"github.com/milk9111/starmaze/prefabs"
)

var defaultEndpointColor = color.NRGBA{R: 0xff, G: 0xd7, A: 0x60}

func NewEndpoint(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	pos := cp.Vector{X: spec.Endpoint.X, Y: spec.Endpoint.Y}

	endpoint := ecs.CreateEntity(w)
	if err := ecs.Add(w, endpoint, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
	}); err != nil {
		return 0, errors.Wrap(err, "endpoint: add transform")
	}
	if err := ecs.Add(w, endpoint, component.EndpointComponent.Kind(), &component.Endpoint{
		Goal:  maze.NewEndpoint(pos, spec.Endpoint.Radius),
		Color: spec.Endpoint.Color.Or(defaultEndpointColor),
	}); err != nil {
		return 0, errors.Wrap(err, "endpoint: add endpoint")
	}
	if err := ecs.Add(w, endpoint, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: component.LayerEndpoint,
	}); err != nil {
		return 0, errors.Wrap(err, "endpoint: add render layer")
	}
	return endpoint, nil
}
