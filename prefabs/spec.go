package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	GameFile     = "game.yaml"
	HotspotsFile = "hotspots.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, errors.Wrapf(err, "prefabs: load %s", filename)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, errors.Wrapf(err, "prefabs: unmarshal %s", filename)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GameSpec struct {
	Name       string         `yaml:"name"`
	Start      PointSpec      `yaml:"start"`
	Endpoint   EndpointSpec   `yaml:"endpoint"`
	Target     TargetSpec     `yaml:"target"`
	Camera     CameraSpec     `yaml:"camera"`
	Input      InputSpec      `yaml:"input"`
	Trail      TrailSpec      `yaml:"trail"`
	Completion CompletionSpec `yaml:"completion"`
	Joystick   JoystickSpec   `yaml:"joystick"`
	BounceBack bool           `yaml:"bounce_back"`
	Rules      string         `yaml:"rules"`
}

type EndpointSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type TargetSpec struct {
	Radius         float64    `yaml:"radius"`
	IdleColor      *YAMLColor `yaml:"idle_color"`
	FollowingColor *YAMLColor `yaml:"following_color"`
	BorderColor    *YAMLColor `yaml:"border_color"`
}

type EdgeFollowMode string

const (
	EdgeFollowOff    EdgeFollowMode = "off"
	EdgeFollowTouch  EdgeFollowMode = "touch"
	EdgeFollowAlways EdgeFollowMode = "always"
)

type CameraSpec struct {
	Zoom         float64        `yaml:"zoom"`
	MinZoom      float64        `yaml:"min_zoom"`
	MaxZoom      float64        `yaml:"max_zoom"`
	EdgeFollow   EdgeFollowMode `yaml:"edge_follow"`
	EdgeFraction float64        `yaml:"edge_fraction"`
	EdgeGain     float64        `yaml:"edge_gain"`
}

type InputSpec struct {
	ZoomSpeed       float64 `yaml:"zoom_speed"`
	JoystickSpeed   float64 `yaml:"joystick_speed"`
	TargetSpeed     float64 `yaml:"target_speed"`
	PanSpeed        float64 `yaml:"pan_speed"`
	JoystickPeriod  int     `yaml:"joystick_period"`
	KeyboardPeriod  int     `yaml:"keyboard_period"`
	PanPeriod       int     `yaml:"pan_period"`
	TapSlop         float64 `yaml:"tap_slop"`
	DeadZone        float64 `yaml:"dead_zone"`
	GamepadDeadZone float64 `yaml:"gamepad_dead_zone"`
}

type TrailSpec struct {
	Capacity int        `yaml:"capacity"`
	Width    float64    `yaml:"width"`
	Opacity  float64    `yaml:"opacity"`
	Color    *YAMLColor `yaml:"color"`
	Rewind   int        `yaml:"rewind"`
}

type CompletionSpec struct {
	Message      string     `yaml:"message"`
	FontSize     float64    `yaml:"font_size"`
	FadeStep     float64    `yaml:"fade_step"`
	HoldTicks    int        `yaml:"hold_ticks"`
	BobAmplitude float64    `yaml:"bob_amplitude"`
	BobSpeed     float64    `yaml:"bob_speed"`
	TextColor    *YAMLColor `yaml:"text_color"`
	ShadeColor   *YAMLColor `yaml:"shade_color"`
}

type JoystickSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Visible bool    `yaml:"visible"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrapf(err, "prefabs: %s", GameFile)
	}
	return &spec, nil
}

// Validate rejects values that would break the game invariants.
func (s *GameSpec) Validate() error {
	switch {
	case s.Camera.MinZoom <= 0:
		return fmt.Errorf("camera.min_zoom must be positive, got %v", s.Camera.MinZoom)
	case s.Camera.MaxZoom < s.Camera.MinZoom:
		return fmt.Errorf("camera.max_zoom %v below min_zoom %v", s.Camera.MaxZoom, s.Camera.MinZoom)
	case s.Endpoint.Radius <= 0:
		return fmt.Errorf("endpoint.radius must be positive, got %v", s.Endpoint.Radius)
	case s.Target.Radius <= 0:
		return fmt.Errorf("target.radius must be positive, got %v", s.Target.Radius)
	case s.Trail.Capacity <= 0:
		return fmt.Errorf("trail.capacity must be positive, got %d", s.Trail.Capacity)
	}
	switch s.Camera.EdgeFollow {
	case EdgeFollowOff, EdgeFollowTouch, EdgeFollowAlways:
	case "":
		s.Camera.EdgeFollow = EdgeFollowTouch
	default:
		return fmt.Errorf("camera.edge_follow: unknown mode %q", s.Camera.EdgeFollow)
	}
	return nil
}

type HotspotsSpec struct {
	Groups []HotspotGroupSpec `yaml:"groups"`
}

type HotspotGroupSpec struct {
	Name     string        `yaml:"name"`
	FontSize float64       `yaml:"font_size"`
	Vertical bool          `yaml:"vertical"`
	Color    *YAMLColor    `yaml:"color"`
	Spots    []HotspotSpec `yaml:"spots"`
}

type HotspotSpec struct {
	Label       string     `yaml:"label"`
	Description string     `yaml:"description"`
	X           float64    `yaml:"x"`
	Y           float64    `yaml:"y"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Color       *YAMLColor `yaml:"color"`
}

func LoadHotspotsSpec() (*HotspotsSpec, error) {
	spec, err := LoadSpec[HotspotsSpec](HotspotsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
