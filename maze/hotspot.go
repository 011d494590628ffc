package maze

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Hotspot is a labeled world-space rectangle that shows a description when
// tapped. Bounds use screen orientation: B is the top edge, T the bottom.
type Hotspot struct {
	Label       string
	Description string
	Bounds      cp.BB
	Fill        color.Color
	FontSize    float64
	Vertical    bool
}

// DescriptionPanel displays hotspot text. The game UI implements it.
type DescriptionPanel interface {
	ShowDescription(title, text string)
	HideDescription()
}

// HotspotAt returns the last hotspot (topmost when drawn in order) whose
// bounds contain the screen point s under cam.
func HotspotAt(hotspots []Hotspot, cam *Camera, s cp.Vector) (Hotspot, bool) {
	w := cam.ScreenToWorld(s)
	for i := len(hotspots) - 1; i >= 0; i-- {
		if hotspots[i].Bounds.ContainsVect(w) {
			return hotspots[i], true
		}
	}
	return Hotspot{}, false
}
