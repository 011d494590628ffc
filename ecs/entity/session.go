package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

func NewSession(w *ecs.World, debug bool) (ecs.Entity, error) {
	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{
		ID:    uuid.New(),
		Phase: component.PhaseLoading,
		Debug: debug,
	}); err != nil {
		return 0, errors.Wrap(err, "session: add session")
	}
	return session, nil
}

// SessionOf returns the world's session, if one was created.
func SessionOf(w *ecs.World) (*component.Session, bool) {
	_, s, ok := ecs.First(w, component.SessionComponent.Kind())
	return s, ok
}
