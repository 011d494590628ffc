package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/starmaze/control"
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

// Pointer id used for the mouse when it grabs the on-screen stick. Touch ids
// from ebiten are non-negative.
const mousePointer = -2

// InputFrame is one tick of raw input in screen space.
type InputFrame struct {
	Cursor        cp.Vector
	MousePressed  bool
	MouseHeld     bool
	MouseReleased bool
	Wheel         float64
	Touches       []control.Touch
	Keys          control.Keys
	Pad           cp.Vector
	HasPad        bool
}

// InputSystem polls ebiten, routes presses on the on-screen stick to the
// stick and everything else to the aggregator, then publishes this tick's
// movement on every MoveRequest.
type InputSystem struct {
	agg   *control.Aggregator
	stick *control.VirtualStick
	pad   *control.Gamepad

	// Suspended drops world input, e.g. while a modal is open.
	Suspended bool

	touchIDs []ebiten.TouchID
	known    map[int]bool
}

func NewInputSystem(agg *control.Aggregator, stick *control.VirtualStick, pad *control.Gamepad) *InputSystem {
	return &InputSystem{agg: agg, stick: stick, pad: pad, known: make(map[int]bool)}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || !ready(w) {
		return
	}
	s.Apply(w, s.poll())
}

func (s *InputSystem) poll() InputFrame {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	f := InputFrame{
		Cursor:        cp.Vector{X: float64(cx), Y: float64(cy)},
		MousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseHeld:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Wheel:         wy,
		Keys: control.Keys{
			Up:       ebiten.IsKeyPressed(ebiten.KeyW),
			Down:     ebiten.IsKeyPressed(ebiten.KeyS),
			Left:     ebiten.IsKeyPressed(ebiten.KeyA),
			Right:    ebiten.IsKeyPressed(ebiten.KeyD),
			PanUp:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			PanDown:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			PanLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			PanRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		},
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, control.Touch{ID: int(id), Position: cp.Vector{X: float64(x), Y: float64(y)}})
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		f.HasPad = true
		f.Pad = cp.Vector{X: x, Y: y}
	}
	return f
}

// Apply feeds one frame through the input pipeline.
func (s *InputSystem) Apply(w *ecs.World, f InputFrame) {
	if s.Suspended {
		f = InputFrame{Cursor: f.Cursor, MouseReleased: f.MouseReleased}
	}

	s.applyMouse(f)
	s.agg.Touches(s.routeTouches(f.Touches))
	if f.Wheel != 0 {
		s.agg.Wheel(f.Cursor, f.Wheel)
	}
	s.agg.SetKeys(f.Keys)
	if s.pad != nil && f.HasPad {
		s.pad.Poll(f.Pad.X, f.Pad.Y)
	}

	intent, moved := s.agg.Tick()
	halted := s.agg.Halted()
	ecs.ForEach(w, component.MoveRequestComponent.Kind(), func(_ ecs.Entity, req *component.MoveRequest) {
		req.Pending = moved
		req.Delta = intent.Delta()
		req.Halted = req.Halted || halted
	})

	for _, tap := range s.agg.DrainTaps() {
		w.Events().Push(ecs.Event{Kind: ecs.EventHotspotTapped, Data: tap})
	}
}

func (s *InputSystem) applyMouse(f InputFrame) {
	onStick := s.stick != nil && s.stick.Active() && s.stick.Pointer() == mousePointer
	switch {
	case f.MousePressed:
		if s.stick == nil || !s.stick.Begin(mousePointer, f.Cursor) {
			s.agg.PointerDown(f.Cursor)
		}
	case f.MouseReleased:
		if onStick {
			s.stick.End()
		} else {
			s.agg.PointerUp(f.Cursor)
		}
	case f.MouseHeld:
		if onStick {
			s.stick.Drag(f.Cursor)
		} else {
			s.agg.PointerMove(f.Cursor)
		}
	}
}

// routeTouches hands touches that started on the stick to the stick and
// returns the rest.
func (s *InputSystem) routeTouches(touches []control.Touch) []control.Touch {
	seen := make(map[int]bool, len(touches))
	rest := touches[:0:0]
	for _, t := range touches {
		seen[t.ID] = true
		isNew := !s.known[t.ID]
		if s.stick != nil {
			if isNew && s.stick.Begin(t.ID, t.Position) {
				continue
			}
			if s.stick.Active() && s.stick.Pointer() == t.ID {
				s.stick.Drag(t.Position)
				continue
			}
		}
		rest = append(rest, t)
	}
	if s.stick != nil && s.stick.Active() && s.stick.Pointer() >= 0 && !seen[s.stick.Pointer()] {
		s.stick.End()
	}
	s.known = seen
	return rest
}
