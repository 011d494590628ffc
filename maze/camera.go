package maze

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/starmaze/common"
)

const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 50.0
)

// Camera maps world space onto the screen with a uniform zoom followed by a
// translation: screen = world*Zoom + Offset.
//
// Fields are read freely but only ZoomAround, Pan and SetBounds mutate them,
// which keeps MinZoom <= Zoom <= MaxZoom.
type Camera struct {
	zoom    float64
	offset  cp.Vector
	minZoom float64
	maxZoom float64
}

// NewCamera returns a camera at the given zoom (clamped) with no pan.
func NewCamera(zoom, minZoom, maxZoom float64) *Camera {
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return &Camera{
		zoom:    common.Clamp(zoom, minZoom, maxZoom),
		minZoom: minZoom,
		maxZoom: maxZoom,
	}
}

func (c *Camera) Zoom() float64     { return c.zoom }
func (c *Camera) Offset() cp.Vector { return c.offset }
func (c *Camera) MinZoom() float64  { return c.minZoom }
func (c *Camera) MaxZoom() float64  { return c.maxZoom }

func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	return p.Mult(c.zoom).Add(c.offset)
}

func (c *Camera) ScreenToWorld(p cp.Vector) cp.Vector {
	return p.Sub(c.offset).Mult(1 / c.zoom)
}

// ZoomAround scales the zoom by factor while keeping the world point under
// screen point s fixed. The new zoom is clamped to the camera bounds; if the
// clamped value equals the current zoom nothing changes and false is returned.
func (c *Camera) ZoomAround(s cp.Vector, factor float64) bool {
	if factor <= 0 {
		return false
	}
	next := common.Clamp(c.zoom*factor, c.minZoom, c.maxZoom)
	if next == c.zoom {
		return false
	}
	applied := next / c.zoom
	c.offset = s.Sub(s.Sub(c.offset).Mult(applied))
	c.zoom = next
	return true
}

// Pan translates the view by a screen-space delta. Zoom is untouched.
func (c *Camera) Pan(delta cp.Vector) {
	c.offset = c.offset.Add(delta)
}

// SetBounds replaces the zoom limits. If the current zoom falls outside the
// new range it is clamped around the screen origin.
func (c *Camera) SetBounds(minZoom, maxZoom float64) {
	if minZoom <= 0 || maxZoom < minZoom {
		return
	}
	c.minZoom = minZoom
	c.maxZoom = maxZoom
	if clamped := common.Clamp(c.zoom, minZoom, maxZoom); clamped != c.zoom {
		c.ZoomAround(cp.Vector{}, clamped/c.zoom)
	}
}

// ScreenRect converts a world-space box into screen space.
func (c *Camera) ScreenRect(bb cp.BB) cp.BB {
	min := c.WorldToScreen(cp.Vector{X: bb.L, Y: bb.B})
	max := c.WorldToScreen(cp.Vector{X: bb.R, Y: bb.T})
	return cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
}
