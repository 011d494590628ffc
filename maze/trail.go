package maze

import "github.com/jakecoffman/cp"

const DefaultTrailCapacity = 512

// Trail is a bounded, ordered record of world positions. When full, the
// oldest point is evicted. Points are stored in world space and projected
// through a Camera only when drawn.
type Trail struct {
	points []cp.Vector
	head   int // index of the oldest point
	size   int
}

func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = DefaultTrailCapacity
	}
	return &Trail{points: make([]cp.Vector, capacity)}
}

func (t *Trail) Len() int { return t.size }

func (t *Trail) Cap() int { return len(t.points) }

// Append records p as the newest point, evicting the oldest when full.
func (t *Trail) Append(p cp.Vector) {
	if t.size < len(t.points) {
		t.points[(t.head+t.size)%len(t.points)] = p
		t.size++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) cp.Vector {
	return t.points[(t.head+i)%len(t.points)]
}

// Last returns the newest point.
func (t *Trail) Last() (cp.Vector, bool) {
	if t.size == 0 {
		return cp.Vector{}, false
	}
	return t.At(t.size - 1), true
}

// Points copies the trail, oldest first.
func (t *Trail) Points() []cp.Vector {
	out := make([]cp.Vector, t.size)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Rewind drops the newest k points and returns them newest first.
// It removes at most Len points.
func (t *Trail) Rewind(k int) []cp.Vector {
	if k > t.size {
		k = t.size
	}
	if k <= 0 {
		return nil
	}
	out := make([]cp.Vector, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, t.At(t.size-1))
		t.size--
	}
	return out
}

// Reset clears the trail.
func (t *Trail) Reset() {
	t.head = 0
	t.size = 0
}

// Resize changes the capacity, keeping the newest points that still fit.
func (t *Trail) Resize(capacity int) {
	if capacity <= 0 || capacity == len(t.points) {
		return
	}
	pts := t.Points()
	if len(pts) > capacity {
		pts = pts[len(pts)-capacity:]
	}
	t.points = make([]cp.Vector, capacity)
	copy(t.points, pts)
	t.head = 0
	t.size = len(pts)
}
