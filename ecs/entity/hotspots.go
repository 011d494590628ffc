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

var defaultHotspotFill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}

func NewHotspots(w *ecs.World, spec *prefabs.HotspotsSpec) (ecs.Entity, error) {
	hotspots := ecs.CreateEntity(w)
	if err := ecs.Add(w, hotspots, component.HotspotsComponent.Kind(), &component.Hotspots{
		Items: BuildHotspots(spec),
	}); err != nil {
		return 0, errors.Wrap(err, "hotspots: add hotspots")
	}
	if err := ecs.Add(w, hotspots, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: component.LayerHotspots,
	}); err != nil {
		return 0, errors.Wrap(err, "hotspots: add render layer")
	}
	return hotspots, nil
}

// BuildHotspots flattens the spec groups in file order. Later entries are
// drawn on top and win hit tests.
func BuildHotspots(spec *prefabs.HotspotsSpec) []maze.Hotspot {
	if spec == nil {
		return nil
	}
	var out []maze.Hotspot
	for _, g := range spec.Groups {
		groupFill := g.Color.Or(defaultHotspotFill)
		for _, s := range g.Spots {
			out = append(out, maze.Hotspot{
				Label:       s.Label,
				Description: s.Description,
				Bounds:      cp.BB{L: s.X, B: s.Y, R: s.X + s.Width, T: s.Y + s.Height},
				Fill:        s.Color.Or(groupFill),
				FontSize:    g.FontSize,
				Vertical:    g.Vertical,
			})
		}
	}
	return out
}
