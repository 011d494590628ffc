package maze

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

// Axis slides are only attempted when the requested motion on that axis
// exceeds this many world pixels.
const slideEpsilon = 0.1

// compass lists the eight fallback unit directions in the order ties are
// broken: right, down-right, down, down-left, left, up-left, up, up-right
// (y grows downward in world space).
var compass = [8]cp.Vector{
	{X: 1, Y: 0},
	{X: diag, Y: diag},
	{X: 0, Y: 1},
	{X: -diag, Y: diag},
	{X: -1, Y: 0},
	{X: -diag, Y: -diag},
	{X: 0, Y: -1},
	{X: diag, Y: -diag},
}

const diag = math.Sqrt2 / 2

// Resolve turns a requested move from current to desired into the position
// the target actually reaches this tick. The first rule that yields an
// unblocked segment wins:
//
//  1. the direct move
//  2. sliding along X, then along Y
//  3. a full step in each compass direction, closest angle first
//  4. the same directions at half a step
//
// If everything is blocked the target stays at current. Resolve is a local
// deflection policy and does no path search.
func Resolve(current, desired cp.Vector, grid *Grid, step float64) cp.Vector {
	if !grid.SegmentBlocked(current.X, current.Y, desired.X, desired.Y) {
		return desired
	}

	d := desired.Sub(current)
	if math.Abs(d.X) > slideEpsilon && !grid.SegmentBlocked(current.X, current.Y, desired.X, current.Y) {
		return cp.Vector{X: desired.X, Y: current.Y}
	}
	if math.Abs(d.Y) > slideEpsilon && !grid.SegmentBlocked(current.X, current.Y, current.X, desired.Y) {
		return cp.Vector{X: current.X, Y: desired.Y}
	}

	order := compassOrder(d)
	for _, length := range [...]float64{step, step / 2} {
		if length <= 0 {
			continue
		}
		for _, idx := range order {
			next := current.Add(compass[idx].Mult(length))
			if !grid.SegmentBlocked(current.X, current.Y, next.X, next.Y) {
				return next
			}
		}
	}
	return current
}

// compassOrder sorts compass indices by angular distance to d, wrapped to
// [0, pi]. The sort is stable so equal distances keep compass order.
func compassOrder(d cp.Vector) [8]int {
	target := math.Atan2(d.Y, d.X)
	var diffs [8]float64
	var order [8]int
	for i, dir := range compass {
		diff := math.Abs(math.Atan2(dir.Y, dir.X) - target)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		diffs[i] = diff
		order[i] = i
	}
	sort.SliceStable(order[:], func(a, b int) bool {
		return diffs[order[a]] < diffs[order[b]]
	})
	return order
}
