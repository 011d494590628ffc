package component

import "github.com/milk9111/starmaze/maze"

type Hotspots struct {
	Items []maze.Hotspot
}

var HotspotsComponent = NewComponent[Hotspots]()
