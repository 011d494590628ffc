package maze

import "github.com/jakecoffman/cp"

// Endpoint is the goal circle. Reached latches: once set it never clears.
type Endpoint struct {
	Position cp.Vector
	Radius   float64
	reached  bool
}

func NewEndpoint(pos cp.Vector, radius float64) *Endpoint {
	return &Endpoint{Position: pos, Radius: radius}
}

func (e *Endpoint) Reached() bool { return e.reached }

// Check tests a target circle against the endpoint and returns true only on
// the call that flips the latch.
func (e *Endpoint) Check(target cp.Vector, targetRadius float64) bool {
	if e.reached {
		return false
	}
	if target.Distance(e.Position) < e.Radius+targetRadius {
		e.reached = true
		return true
	}
	return false
}
