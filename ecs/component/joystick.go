package component

import "github.com/milk9111/starmaze/control"

type Joystick struct {
	Stick   *control.VirtualStick
	Visible bool
}

var JoystickComponent = NewComponent[Joystick]()
