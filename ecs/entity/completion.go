package entity

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/prefabs"
)

func NewCompletion(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	c := spec.Completion
	completion := ecs.CreateEntity(w)
	if err := ecs.Add(w, completion, component.CompletionComponent.Kind(), &component.Completion{
		Stage:        component.CompletionHidden,
		FadeStep:     orFloat(c.FadeStep, 0.02),
		HoldTicks:    c.HoldTicks,
		Message:      c.Message,
		FontSize:     orFloat(c.FontSize, 72),
		BobAmplitude: c.BobAmplitude,
		BobSpeed:     c.BobSpeed,
		TextColor:    c.TextColor.Or(colornames.Gold),
		ShadeColor:   c.ShadeColor.Or(color.NRGBA{A: 0x80}),
	}); err != nil {
		return 0, errors.Wrap(err, "completion: add completion")
	}
	return completion, nil
}

func orFloat(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
