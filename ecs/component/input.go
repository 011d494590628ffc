package component

import "github.com/jakecoffman/cp"

// MoveRequest carries this tick's movement from input to motion. Pending
// means Delta should be resolved; Halted means the movement loop was
// released.
type MoveRequest struct {
	Delta   cp.Vector
	Pending bool
	Halted  bool
}

var MoveRequestComponent = NewComponent[MoveRequest]()
