package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starmaze/ecs/component"
)

// World owns entities, component stores, the per-tick event queue and the
// system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  *Scheduler
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:  make(map[component.ComponentID]*SparseSet),
		systems: NewScheduler(),
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It returns false if e
// was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	return w.entities.all()
}

// First returns the first live entity that has a component of the given kind.
func (w *World) First(kind component.Identified) (Entity, bool) {
	for _, e := range w.store(kind.ID(), false).Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.systems.Add(s)
}

// Update runs all systems once, then drops undelivered events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.systems.Update(w)
	w.events.flush()
}

// Draw calls all render-capable systems in update order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems.Systems() {
		if rs, ok := s.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
