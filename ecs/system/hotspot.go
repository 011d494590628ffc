package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/logger"
	"github.com/milk9111/starmaze/maze"
)

// HotspotSystem turns screen taps into description panel updates.
type HotspotSystem struct {
	panel maze.DescriptionPanel
}

func NewHotspotSystem(panel maze.DescriptionPanel) *HotspotSystem {
	return &HotspotSystem{panel: panel}
}

func (s *HotspotSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	taps := w.Events().Take(ecs.EventHotspotTapped)
	if len(taps) == 0 || s.panel == nil {
		return
	}
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok || cam.View == nil {
		return
	}

	ecs.ForEach(w, component.HotspotsComponent.Kind(), func(_ ecs.Entity, h *component.Hotspots) {
		for _, evt := range taps {
			p, ok := evt.Data.(cp.Vector)
			if !ok {
				continue
			}
			spot, hit := maze.HotspotAt(h.Items, cam.View, p)
			if !hit {
				continue
			}
			logger.For("hotspot").WithField("label", spot.Label).Debug("hotspot tapped")
			s.panel.ShowDescription(spot.Label, spot.Description)
		}
	})
}
