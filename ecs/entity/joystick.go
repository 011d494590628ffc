package entity

import (
	"github.com/pkg/errors"

	"github.com/milk9111/starmaze/control"
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

func NewJoystick(w *ecs.World, stick *control.VirtualStick, visible bool) (ecs.Entity, error) {
	joystick := ecs.CreateEntity(w)
	if err := ecs.Add(w, joystick, component.JoystickComponent.Kind(), &component.Joystick{
		Stick:   stick,
		Visible: visible,
	}); err != nil {
		return 0, errors.Wrap(err, "joystick: add joystick")
	}
	return joystick, nil
}
