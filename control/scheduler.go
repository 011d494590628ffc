package control

import "github.com/jakecoffman/cp"

// LoopKind names the input family that owns the movement loop.
type LoopKind uint8

const (
	LoopNone LoopKind = iota
	LoopJoystick
	LoopKeyboard
)

func (k LoopKind) String() string {
	switch k {
	case LoopJoystick:
		return "joystick"
	case LoopKeyboard:
		return "keyboard"
	default:
		return "none"
	}
}

// Intent is one firing of the movement loop: move Direction*Speed from the
// target's current position.
type Intent struct {
	Kind      LoopKind
	Direction cp.Vector
	Speed     float64
}

func (i Intent) Delta() cp.Vector {
	return i.Direction.Mult(i.Speed)
}

// Scheduler holds at most one repeating movement loop. Starting a loop
// always cancels the running one first, so no two loops ever fire in the
// same tick.
type Scheduler struct {
	loop    Intent
	period  int
	elapsed int
	halted  bool
}

// Start cancels any running loop and begins a new one that fires every
// period ticks, first firing period ticks from now.
func (s *Scheduler) Start(kind LoopKind, dir cp.Vector, speed float64, period int) {
	if kind == LoopNone {
		s.cancel()
		return
	}
	if s.loop.Kind != LoopNone {
		s.cancel()
		s.halted = false
	}
	if period < 1 {
		period = 1
	}
	s.loop = Intent{Kind: kind, Direction: dir, Speed: speed}
	s.period = period
	s.elapsed = 0
}

// Steer changes the direction of the running loop without restarting it.
func (s *Scheduler) Steer(dir cp.Vector) {
	if s.loop.Kind != LoopNone {
		s.loop.Direction = dir
	}
}

// Stop ends the loop if it is owned by kind.
func (s *Scheduler) Stop(kind LoopKind) bool {
	if kind == LoopNone || s.loop.Kind != kind {
		return false
	}
	s.cancel()
	s.halted = true
	return true
}

func (s *Scheduler) cancel() {
	s.loop = Intent{}
	s.period = 0
	s.elapsed = 0
}

func (s *Scheduler) Active() LoopKind {
	return s.loop.Kind
}

// Tick advances the running loop by one tick and reports whether it fired.
func (s *Scheduler) Tick() (Intent, bool) {
	if s.loop.Kind == LoopNone {
		return Intent{}, false
	}
	s.elapsed++
	if s.elapsed < s.period {
		return Intent{}, false
	}
	s.elapsed = 0
	return s.loop, true
}

// TakeHalted reports, once, that a loop was stopped by its owner.
func (s *Scheduler) TakeHalted() bool {
	h := s.halted
	s.halted = false
	return h
}
