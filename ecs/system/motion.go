package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/logger"
	"github.com/milk9111/starmaze/maze"
)

// MotionSystem resolves pending move requests against the collision grid and
// records the result on the target's trail.
type MotionSystem struct {
	log *logrus.Entry
}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{log: logger.For("motion")}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil || !ready(w) {
		return
	}
	_, layer, ok := ecs.First(w, component.MazeLayerComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.TargetComponent.Kind(), component.MoveRequestComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, tg *component.Target, req *component.MoveRequest) {
			defer func() { *req = component.MoveRequest{} }()

			trail, _ := ecs.Get(w, e, component.TrailComponent.Kind())
			if req.Pending {
				m.move(w, e, t, tg, req, trail, layer.Grid)
				return
			}
			if req.Halted && tg.State == component.TargetFollowing {
				tg.State = component.TargetIdle
			}
		})
}

func (m *MotionSystem) move(w *ecs.World, e ecs.Entity, t *component.Transform, tg *component.Target, req *component.MoveRequest, trail *component.Trail, grid *maze.Grid) {
	if !tg.Following {
		tg.Following = true
		if trail != nil {
			trail.Path.Append(t.Position)
		}
		m.log.WithFields(sessionFields(w)).Debug("target following")
	}
	tg.State = component.TargetFollowing

	current := t.Position
	next := maze.Resolve(current, current.Add(req.Delta), grid, tg.Step)
	if next != current {
		t.Position = next
		if trail != nil {
			trail.Path.Append(next)
		}
		return
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventTargetStuck, Entity: e, Data: current})
	if trail == nil || trail.Rewind <= 0 {
		return
	}
	dropped := trail.Path.Rewind(trail.Rewind)
	if len(dropped) == 0 {
		return
	}
	// Land on the oldest rewound point and release the target; the next
	// move re-seeds the trail from here.
	back := dropped[len(dropped)-1]
	t.Position = back
	tg.Following = false
	tg.State = component.TargetIdle
	m.log.WithField("to", back).Debug("bounced back")
}
