package entity

import (
	"github.com/pkg/errors"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

// NewMazeLayer adds the empty maze holder. It is filled once images load.
func NewMazeLayer(w *ecs.World, showOverlay bool) (ecs.Entity, error) {
	layer := ecs.CreateEntity(w)
	if err := ecs.Add(w, layer, component.MazeLayerComponent.Kind(), &component.MazeLayer{
		ShowOverlay: showOverlay,
	}); err != nil {
		return 0, errors.Wrap(err, "maze: add layer")
	}
	return layer, nil
}
