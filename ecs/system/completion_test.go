package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

func TestAdvanceCompletionTimeline(t *testing.T) {
	c := &component.Completion{Stage: component.CompletionReveal, FadeStep: 0.5, HoldTicks: 3}

	steps := []struct {
		stage   component.CompletionStage
		overlay float64
		text    float64
	}{
		{component.CompletionReveal, 0.5, 0},
		{component.CompletionAnnounce, 1, 0},
		{component.CompletionAnnounce, 1, 0.5},
		{component.CompletionHold, 1, 1},
		{component.CompletionFadeOut, 1, 1},
		{component.CompletionFadeOut, 1, 0.5},
		{component.CompletionDone, 1, 0},
		{component.CompletionDone, 1, 0},
	}
	for i, want := range steps {
		AdvanceCompletion(c)
		assert.Equal(t, want.stage, c.Stage, "tick %d", i+1)
		assert.InDelta(t, want.overlay, c.OverlayAlpha, 1e-9, "tick %d", i+1)
		assert.InDelta(t, want.text, c.TextAlpha, 1e-9, "tick %d", i+1)
	}
}

func TestAdvanceCompletionHiddenIsIdle(t *testing.T) {
	c := &component.Completion{FadeStep: 0.5}
	AdvanceCompletion(c)
	assert.Equal(t, component.CompletionHidden, c.Stage)
	assert.Zero(t, c.Ticks)
}

func TestCompletionStartsOnEndpointEvent(t *testing.T) {
	w := ecs.NewWorld()
	c := &component.Completion{FadeStep: 0.25, HoldTicks: 10}
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.CompletionComponent.Kind(), c))
	s := NewCompletionSystem()

	s.Update(w)
	assert.Equal(t, component.CompletionHidden, c.Stage)

	w.Events().Push(ecs.Event{Kind: ecs.EventEndpointReached})
	s.Update(w)
	assert.Equal(t, component.CompletionReveal, c.Stage)
	assert.InDelta(t, 0.25, c.OverlayAlpha, 1e-9)
}

func TestBobOffsetBounded(t *testing.T) {
	c := &component.Completion{BobAmplitude: 6, BobSpeed: 0.005}
	for i := 0; i < 200; i++ {
		c.Ticks = i
		off := BobOffset(c)
		assert.LessOrEqual(t, off, 6.0)
		assert.GreaterOrEqual(t, off, -6.0)
	}
}
