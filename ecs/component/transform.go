package component

import "github.com/jakecoffman/cp"

// Transform is a world-space position. Screen positions are derived from it
// through the camera at draw time and never stored.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
