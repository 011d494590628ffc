package component

import "github.com/google/uuid"

// Phase is the lifecycle of a game session. Loading moves to exactly one of
// Ready or Failed.
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

type Session struct {
	ID    uuid.UUID
	Phase Phase
	Err   error
	Debug bool
}

var SessionComponent = NewComponent[Session]()
