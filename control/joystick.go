package control

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	StickMaxDistance = 35.0
	StickSize        = 100.0
	StickHandle      = 40.0
)

// VirtualStick is the on-screen joystick. Dragging its handle broadcasts
// the handle offset divided by the max distance, so vectors have magnitude
// <= 1. Releasing broadcasts a stop.
type VirtualStick struct {
	Broadcaster

	center  cp.Vector
	handle  cp.Vector
	active  bool
	pointer int
}

func NewVirtualStick(center cp.Vector) *VirtualStick {
	return &VirtualStick{center: center, pointer: -1}
}

func (s *VirtualStick) Center() cp.Vector { return s.center }

// SetCenter moves the stick base. Ignored while the stick is held.
func (s *VirtualStick) SetCenter(c cp.Vector) {
	if s.active {
		return
	}
	s.center = c
}

// Handle returns the handle offset from the center in screen pixels.
func (s *VirtualStick) Handle() cp.Vector { return s.handle }

func (s *VirtualStick) Active() bool { return s.active }

// Pointer returns the id of the pointer holding the stick, or -1.
func (s *VirtualStick) Pointer() int { return s.pointer }

// Contains reports whether screen point p is over the stick base.
func (s *VirtualStick) Contains(p cp.Vector) bool {
	return p.Distance(s.center) <= StickSize/2
}

// Begin grabs the stick with pointer id if p is over it.
func (s *VirtualStick) Begin(id int, p cp.Vector) bool {
	if s.active || !s.Contains(p) {
		return false
	}
	s.active = true
	s.pointer = id
	s.Drag(p)
	return true
}

// Drag moves the handle toward p, clamped to the max distance.
func (s *VirtualStick) Drag(p cp.Vector) {
	if !s.active {
		return
	}
	off := p.Sub(s.center)
	if l := off.Length(); l > StickMaxDistance {
		off = off.Mult(StickMaxDistance / l)
	}
	s.handle = off
	s.Move(off.Mult(1 / StickMaxDistance))
}

// End releases the stick and recenters the handle.
func (s *VirtualStick) End() {
	if !s.active {
		return
	}
	s.active = false
	s.pointer = -1
	s.handle = cp.Vector{}
	s.Stop()
}

// Gamepad turns an analog stick reading into movement vectors. Readings
// inside the dead zone are treated as released.
type Gamepad struct {
	Broadcaster

	DeadZone float64
	active   bool
}

func NewGamepad(deadZone float64) *Gamepad {
	return &Gamepad{DeadZone: deadZone}
}

// Poll feeds one axis reading per tick.
func (g *Gamepad) Poll(x, y float64) {
	mag := math.Hypot(x, y)
	if mag <= g.DeadZone {
		if g.active {
			g.active = false
			g.Stop()
		}
		return
	}
	v := cp.Vector{X: x, Y: y}
	if mag > 1 {
		v = v.Mult(1 / mag)
	}
	g.active = true
	g.Move(v)
}

func (g *Gamepad) Active() bool { return g.active }
