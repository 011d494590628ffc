package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

// CompletionSystem runs the solved transition: the solved image fades in,
// then the message fades in, holds, and fades out. The hold counts from the
// moment the message starts to appear.
type CompletionSystem struct{}

func NewCompletionSystem() *CompletionSystem {
	return &CompletionSystem{}
}

func (s *CompletionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	started := len(w.Events().Take(ecs.EventEndpointReached)) > 0
	ecs.ForEach(w, component.CompletionComponent.Kind(), func(_ ecs.Entity, c *component.Completion) {
		if started && c.Stage == component.CompletionHidden {
			c.Stage = component.CompletionReveal
		}
		AdvanceCompletion(c)
	})
}

// AdvanceCompletion steps the transition by one tick.
func AdvanceCompletion(c *component.Completion) {
	if c.Stage == component.CompletionHidden || c.Stage == component.CompletionDone {
		return
	}
	c.Ticks++

	switch c.Stage {
	case component.CompletionReveal:
		c.OverlayAlpha = math.Min(1, c.OverlayAlpha+c.FadeStep)
		if c.OverlayAlpha >= 1 {
			c.Stage = component.CompletionAnnounce
			c.HoldLeft = c.HoldTicks
		}
	case component.CompletionAnnounce:
		c.TextAlpha = math.Min(1, c.TextAlpha+c.FadeStep)
		c.HoldLeft--
		switch {
		case c.HoldLeft <= 0:
			c.Stage = component.CompletionFadeOut
		case c.TextAlpha >= 1:
			c.Stage = component.CompletionHold
		}
	case component.CompletionHold:
		c.HoldLeft--
		if c.HoldLeft <= 0 {
			c.Stage = component.CompletionFadeOut
		}
	case component.CompletionFadeOut:
		c.TextAlpha = math.Max(0, c.TextAlpha-c.FadeStep)
		if c.TextAlpha <= 0 {
			c.Stage = component.CompletionDone
		}
	}
}

// BobOffset is the message's vertical offset in screen pixels.
func BobOffset(c *component.Completion) float64 {
	ms := float64(c.Ticks) * 1000 / ebiten.DefaultTPS
	return math.Sin(ms*c.BobSpeed) * c.BobAmplitude
}
