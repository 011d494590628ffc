package component

import (
	"image/color"

	"github.com/milk9111/starmaze/maze"
)

type Endpoint struct {
	Goal  *maze.Endpoint
	Color color.Color
}

var EndpointComponent = NewComponent[Endpoint]()
