package control

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/logger"
	"github.com/milk9111/starmaze/maze"
)

// Config tunes the aggregator. Speeds are in world pixels per loop firing,
// pan speed in screen pixels, periods in ticks.
type Config struct {
	ZoomSpeed      float64
	JoystickSpeed  float64
	TargetSpeed    float64
	PanSpeed       float64
	JoystickPeriod int
	KeyboardPeriod int
	PanPeriod      int
	TapSlop        float64
	DeadZone       float64
}

func DefaultConfig() Config {
	return Config{
		ZoomSpeed:      0.1,
		JoystickSpeed:  5,
		TargetSpeed:    8,
		PanSpeed:       20,
		JoystickPeriod: 1,
		KeyboardPeriod: 2,
		PanPeriod:      2,
		TapSlop:        4,
		DeadZone:       0.05,
	}
}

// Keys is the held state of the keyboard controls for one tick.
type Keys struct {
	Up, Down, Left, Right             bool // WASD: move the target
	PanUp, PanDown, PanLeft, PanRight bool // arrows: move the view
}

func (k Keys) move() cp.Vector {
	var v cp.Vector
	if k.Up {
		v.Y--
	}
	if k.Down {
		v.Y++
	}
	if k.Left {
		v.X--
	}
	if k.Right {
		v.X++
	}
	if v.X == 0 && v.Y == 0 {
		return v
	}
	return v.Normalize()
}

func (k Keys) pan(speed float64) cp.Vector {
	var v cp.Vector
	if k.PanUp {
		v.Y += speed
	}
	if k.PanDown {
		v.Y -= speed
	}
	if k.PanLeft {
		v.X += speed
	}
	if k.PanRight {
		v.X -= speed
	}
	return v
}

func (k Keys) moving() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Touch is one active touch point in screen space.
type Touch struct {
	ID       int
	Position cp.Vector
}

// Aggregator turns raw pointer, touch, wheel, keyboard and joystick input
// into camera changes, applied immediately, and at most one movement Intent
// per tick from its Scheduler.
type Aggregator struct {
	cfg   Config
	cam   *maze.Camera
	sched Scheduler
	log   *logrus.Entry

	locked    bool
	touchSeen bool
	keys      Keys
	moveHeld  bool
	panTicks  int
	taps      []cp.Vector
	unsubs    []func()

	pointerDown   bool
	pointerOrigin cp.Vector
	pointerLast   cp.Vector

	touchIDs  []int
	touchLast map[int]cp.Vector
	pinchDist float64
}

var _ MovementListener = (*Aggregator)(nil)

func NewAggregator(cam *maze.Camera, cfg Config) *Aggregator {
	return &Aggregator{
		cfg:       cfg,
		cam:       cam,
		log:       logger.For("input"),
		touchLast: make(map[int]cp.Vector),
	}
}

// SetConfig swaps tuning values, typically after a spec reload. A running
// loop keeps its current speed until it is restarted.
func (a *Aggregator) SetConfig(cfg Config) {
	a.cfg = cfg
}

func (a *Aggregator) Camera() *maze.Camera { return a.cam }

// Attach subscribes the aggregator to src until Close.
func (a *Aggregator) Attach(src MovementSource) {
	a.unsubs = append(a.unsubs, src.Subscribe(a))
}

func (a *Aggregator) Close() {
	for _, u := range a.unsubs {
		u()
	}
	a.unsubs = nil
}

// Lock permanently ignores movement input and stops any running loop.
// Camera input keeps working.
func (a *Aggregator) Lock() {
	if a.locked {
		return
	}
	a.locked = true
	a.sched.Stop(a.sched.Active())
	a.log.Debug("movement locked")
}

func (a *Aggregator) Locked() bool { return a.locked }

// TouchSeen reports whether any touch input has been received.
func (a *Aggregator) TouchSeen() bool { return a.touchSeen }

func (a *Aggregator) Active() LoopKind { return a.sched.Active() }

// OnMove starts the joystick loop, or steers it when it is already running.
// Vectors longer than 1 are
// normalized; vectors under the dead zone count as a release.
func (a *Aggregator) OnMove(dir cp.Vector) {
	if a.locked {
		return
	}
	mag := dir.Length()
	if mag < a.cfg.DeadZone {
		a.OnStop()
		return
	}
	if mag > 1 {
		dir = dir.Mult(1 / mag)
	}
	if a.sched.Active() == LoopJoystick {
		a.sched.Steer(dir)
		return
	}
	a.log.WithField("dir", dir).Debug("joystick loop start")
	a.sched.Start(LoopJoystick, dir, a.cfg.JoystickSpeed, a.cfg.JoystickPeriod)
}

func (a *Aggregator) OnStop() {
	if a.sched.Stop(LoopJoystick) {
		a.log.Debug("joystick loop stop")
	}
}

// SetKeys records the held keys. Pressing a WASD key starts the keyboard
// loop; holding keeps steering it, releasing all of them stops it. Arrow keys
// only pan and never touch the movement loop.
func (a *Aggregator) SetKeys(k Keys) {
	a.keys = k
	held := !a.locked && k.moving()
	pressed := held && !a.moveHeld
	a.moveHeld = held
	switch {
	case pressed:
		a.sched.Start(LoopKeyboard, k.move(), a.cfg.TargetSpeed, a.cfg.KeyboardPeriod)
		a.log.Debug("keyboard loop start")
	case held:
		if a.sched.Active() == LoopKeyboard {
			a.sched.Steer(k.move())
		}
	case a.sched.Stop(LoopKeyboard):
		a.log.Debug("keyboard loop stop")
	}
}

// Tick advances arrow-key panning and the movement loop. It returns the
// intent to resolve this tick, if any.
func (a *Aggregator) Tick() (Intent, bool) {
	a.tickPan()
	in, fired := a.sched.Tick()
	if !fired || a.locked || (in.Direction.X == 0 && in.Direction.Y == 0) {
		return Intent{}, false
	}
	return in, true
}

// tickPan pans by PanSpeed every PanPeriod ticks while an arrow key is held.
func (a *Aggregator) tickPan() {
	d := a.keys.pan(a.cfg.PanSpeed)
	if d.X == 0 && d.Y == 0 {
		a.panTicks = 0
		return
	}
	a.panTicks++
	if a.panTicks < max(a.cfg.PanPeriod, 1) {
		return
	}
	a.panTicks = 0
	a.cam.Pan(d)
}

// Halted reports, once, that the movement loop was released.
func (a *Aggregator) Halted() bool {
	return a.sched.TakeHalted()
}

// PointerDown begins a mouse drag at screen point p.
func (a *Aggregator) PointerDown(p cp.Vector) {
	a.pointerDown = true
	a.pointerOrigin = p
	a.pointerLast = p
}

// PointerMove pans the camera by the pointer delta while dragging.
func (a *Aggregator) PointerMove(p cp.Vector) {
	if !a.pointerDown {
		return
	}
	if d := p.Sub(a.pointerLast); d.X != 0 || d.Y != 0 {
		a.cam.Pan(d)
	}
	a.pointerLast = p
}

// PointerUp ends a drag. A press that barely moved is queued as a tap.
func (a *Aggregator) PointerUp(p cp.Vector) {
	if !a.pointerDown {
		return
	}
	a.PointerMove(p)
	a.pointerDown = false
	if p.Distance(a.pointerOrigin) < a.cfg.TapSlop {
		a.taps = append(a.taps, p)
	}
}

func (a *Aggregator) Dragging() bool { return a.pointerDown }

// Wheel zooms around screen point p. Positive dy zooms in.
func (a *Aggregator) Wheel(p cp.Vector, dy float64) {
	switch {
	case dy > 0:
		a.cam.ZoomAround(p, 1+a.cfg.ZoomSpeed)
	case dy < 0:
		a.cam.ZoomAround(p, 1-a.cfg.ZoomSpeed)
	}
}

// Touches takes the complete set of active touches for this tick. One finger
// pans, two fingers pinch-zoom around their midpoint. A new single touch is
// queued as a tap.
func (a *Aggregator) Touches(touches []Touch) {
	if len(touches) > 0 {
		a.touchSeen = true
	}
	sort.Slice(touches, func(i, j int) bool { return touches[i].ID < touches[j].ID })

	prevIDs := a.touchIDs
	cur := make(map[int]cp.Vector, len(touches))
	ids := make([]int, 0, len(touches))
	for _, t := range touches {
		cur[t.ID] = t.Position
		ids = append(ids, t.ID)
	}

	switch {
	case len(ids) == 1:
		id := ids[0]
		last, seen := a.touchLast[id]
		switch {
		case len(prevIDs) == 0:
			a.taps = append(a.taps, cur[id])
		case seen && len(prevIDs) == 1:
			if d := cur[id].Sub(last); d.X != 0 || d.Y != 0 {
				a.cam.Pan(d)
			}
		}
		// Dropping from a pinch to one finger only rebases.
		a.pinchDist = 0
	case len(ids) >= 2:
		p1, p2 := cur[ids[0]], cur[ids[1]]
		dist := p1.Distance(p2)
		samePair := len(prevIDs) >= 2 && prevIDs[0] == ids[0] && prevIDs[1] == ids[1]
		if samePair && a.pinchDist > 0 && dist > 0 {
			mid := p1.Add(p2).Mult(0.5)
			a.cam.ZoomAround(mid, dist/a.pinchDist)
		}
		a.pinchDist = dist
	default:
		a.pinchDist = 0
	}

	a.touchIDs = ids
	a.touchLast = cur
}

// DrainTaps returns queued screen-space taps and clears the queue.
func (a *Aggregator) DrainTaps() []cp.Vector {
	out := a.taps
	a.taps = nil
	return out
}

// EdgeFollow pans the camera so a target at screen point s stays away from
// the viewport edges. Within threshold = fraction*width of an edge, the view
// moves by threshold*(1-dist/threshold)*gain.
func EdgeFollow(cam *maze.Camera, s cp.Vector, width, height, fraction, gain float64) cp.Vector {
	threshold := width * fraction
	if threshold <= 0 {
		return cp.Vector{}
	}
	push := func(dist float64) float64 {
		if dist >= threshold {
			return 0
		}
		return threshold * (1 - math.Max(dist, 0)/threshold) * gain
	}
	d := cp.Vector{
		X: push(s.X) - push(width-s.X),
		Y: push(s.Y) - push(height-s.Y),
	}
	if d.X != 0 || d.Y != 0 {
		cam.Pan(d)
	}
	return d
}
