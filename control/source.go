package control

import "github.com/jakecoffman/cp"

// MovementListener receives direction vectors from a movement source. Vectors
// have magnitude <= 1; OnStop means the source was released.
type MovementListener interface {
	OnMove(dir cp.Vector)
	OnStop()
}

// MovementSource is anything that produces movement vectors, such as the
// on-screen stick or a gamepad.
type MovementSource interface {
	Subscribe(l MovementListener) (unsubscribe func())
}

// ListenerFuncs adapts a pair of funcs to MovementListener. Nil funcs are
// skipped.
type ListenerFuncs struct {
	Move func(dir cp.Vector)
	Stop func()
}

func (f ListenerFuncs) OnMove(dir cp.Vector) {
	if f.Move != nil {
		f.Move(dir)
	}
}

func (f ListenerFuncs) OnStop() {
	if f.Stop != nil {
		f.Stop()
	}
}

type subscription struct {
	id int
	l  MovementListener
}

// Broadcaster fans movement out to subscribers in subscription order.
// The zero value is ready to use.
type Broadcaster struct {
	nextID int
	subs   []subscription
}

var _ MovementSource = (*Broadcaster)(nil)

func (b *Broadcaster) Subscribe(l MovementListener) func() {
	if l == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, l: l})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *Broadcaster) Move(dir cp.Vector) {
	for _, s := range append([]subscription(nil), b.subs...) {
		s.l.OnMove(dir)
	}
}

func (b *Broadcaster) Stop() {
	for _, s := range append([]subscription(nil), b.subs...) {
		s.l.OnStop()
	}
}

func (b *Broadcaster) Subscribers() int {
	return len(b.subs)
}
