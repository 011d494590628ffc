package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

func TestMotionMovesAndSeedsTrail(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 10, 90))
	p := addTarget(t, w, cp.Vector{X: 20, Y: 50}, 5, 0)
	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: 5}}

	NewMotionSystem().Update(w)

	assert.Equal(t, cp.Vector{X: 25, Y: 50}, p.transform.Position)
	assert.Equal(t, []cp.Vector{{X: 20, Y: 50}, {X: 25, Y: 50}}, p.trail.Path.Points())
	assert.True(t, p.target.Following)
	assert.Equal(t, component.TargetFollowing, p.target.State)
	assert.False(t, p.request.Pending, "request is consumed")

	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{Y: 5}}
	NewMotionSystem().Update(w)
	assert.Equal(t, 3, p.trail.Path.Len(), "start is only seeded once")
}

func TestMotionHaltReturnsToIdle(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 10, 90))
	p := addTarget(t, w, cp.Vector{X: 20, Y: 50}, 5, 0)
	m := NewMotionSystem()

	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: 5}}
	m.Update(w)
	require.Equal(t, component.TargetFollowing, p.target.State)

	*p.request = component.MoveRequest{Halted: true}
	m.Update(w)
	assert.Equal(t, component.TargetIdle, p.target.State)
	assert.True(t, p.target.Following, "following latch survives a halt")
}

func TestMotionStuckPushesEvent(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 45, 55))
	p := addTarget(t, w, cp.Vector{X: 50, Y: 50}, 20, 0)
	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: 20}}

	NewMotionSystem().Update(w)

	assert.Equal(t, cp.Vector{X: 50, Y: 50}, p.transform.Position)
	stuck := w.Events().Take(ecs.EventTargetStuck)
	require.Len(t, stuck, 1)
	assert.Equal(t, p.entity, stuck[0].Entity)
}

func TestMotionBounceBack(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 45, 55))
	p := addTarget(t, w, cp.Vector{X: 50, Y: 50}, 20, 2)
	p.target.Following = true
	for x := 46.0; x <= 50; x++ {
		p.trail.Path.Append(cp.Vector{X: x, Y: 50})
	}
	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: 20}}

	NewMotionSystem().Update(w)

	assert.Equal(t, cp.Vector{X: 49, Y: 50}, p.transform.Position)
	assert.Equal(t, 3, p.trail.Path.Len())
	assert.False(t, p.target.Following)
	assert.Equal(t, component.TargetIdle, p.target.State)

	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: -1}}
	NewMotionSystem().Update(w)

	assert.Equal(t, cp.Vector{X: 48, Y: 50}, p.transform.Position)
	assert.Equal(t, []cp.Vector{{X: 46, Y: 50}, {X: 47, Y: 50}, {X: 48, Y: 50}, {X: 49, Y: 50}, {X: 48, Y: 50}}, p.trail.Path.Points())
}

func TestMotionInertUntilReady(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 10, 90))
	_, s, _ := ecs.First(w, component.SessionComponent.Kind())
	s.Phase = component.PhaseLoading
	p := addTarget(t, w, cp.Vector{X: 20, Y: 50}, 5, 0)
	*p.request = component.MoveRequest{Pending: true, Delta: cp.Vector{X: 5}}

	NewMotionSystem().Update(w)

	assert.Equal(t, cp.Vector{X: 20, Y: 50}, p.transform.Position)
	assert.Equal(t, 0, p.trail.Path.Len())
}
