package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/logger"
)

// Locker stops further movement input once the maze is solved.
type Locker interface {
	Lock()
}

// EndpointSystem checks the target against each endpoint once per tick,
// after motion.
type EndpointSystem struct {
	locker Locker
	log    *logrus.Entry
}

func NewEndpointSystem(locker Locker) *EndpointSystem {
	return &EndpointSystem{locker: locker, log: logger.For("endpoint")}
}

func (s *EndpointSystem) Update(w *ecs.World) {
	if w == nil || !ready(w) {
		return
	}
	pos, target, ok := targetPosition(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.EndpointComponent.Kind(), func(e ecs.Entity, ep *component.Endpoint) {
		if !ep.Goal.Check(pos, target.Radius) {
			return
		}
		if s.locker != nil {
			s.locker.Lock()
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventEndpointReached, Entity: e, Data: pos})
		s.log.WithFields(sessionFields(w)).WithFields(logrus.Fields{
			"x": pos.X,
			"y": pos.Y,
		}).Info("endpoint reached")
	})
}
