package ecs

import "fmt"

// Entity is a handle to one maze object (target, camera, hotspot, ...). The
// low half is a 1-based storage slot, the high half counts how many times
// that slot has been reused, so handles to destroyed objects go stale.
type Entity uint64

type slotID uint32
type generation uint32

const slotBits = 32

func makeEntity(slot slotID, gen generation) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(slot))
}

func (e Entity) slot() slotID {
	return slotID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> slotBits))
}

// String formats the handle as slot.generation for log fields.
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.slot(), e.generation())
}

// Valid reports whether e was ever handed out. The zero Entity never is.
func (e Entity) Valid() bool {
	return e.slot() != 0
}
