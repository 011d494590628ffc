package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

// ready reports whether the session finished loading. Gameplay systems are
// inert until then.
func ready(w *ecs.World) bool {
	_, s, ok := ecs.First(w, component.SessionComponent.Kind())
	return ok && s.Phase == component.PhaseReady
}

func sessionFields(w *ecs.World) map[string]any {
	if _, s, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		return map[string]any{"session": s.ID.String()}
	}
	return nil
}

// targetPosition returns the first target's world position and radius.
func targetPosition(w *ecs.World) (cp.Vector, *component.Target, bool) {
	var (
		pos   cp.Vector
		found *component.Target
	)
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TargetComponent.Kind(), func(_ ecs.Entity, t *component.Transform, tg *component.Target) {
		if found == nil {
			pos, found = t.Position, tg
		}
	})
	return pos, found, found != nil
}
