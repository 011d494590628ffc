package entity

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/prefabs"
)

func TestNewTargetFromSpec(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	e, err := NewTarget(w, spec)
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: spec.Start.X, Y: spec.Start.Y}, tr.Position)

	target, ok := ecs.Get(w, e, component.TargetComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.TargetIdle, target.State)
	assert.False(t, target.Following)

	trail, ok := ecs.Get(w, e, component.TrailComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, spec.Trail.Capacity, trail.Path.Cap())
	assert.Zero(t, trail.Rewind, "bounce back is off by default")
	assert.True(t, ecs.Has(w, e, component.MoveRequestComponent.Kind()))
}

func TestBounceRewind(t *testing.T) {
	cases := []struct {
		name   string
		on     bool
		rewind int
		want   int
	}{
		{"off", false, 9, 0},
		{"on default", true, 0, 5},
		{"on custom", true, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := &prefabs.GameSpec{BounceBack: c.on, Trail: prefabs.TrailSpec{Rewind: c.rewind}}
			assert.Equal(t, c.want, bounceRewind(spec))
		})
	}
}

func TestBuildHotspotsInheritsGroupStyle(t *testing.T) {
	groupFill := &prefabs.YAMLColor{Color: color.NRGBA{B: 255, A: 255}}
	ownFill := &prefabs.YAMLColor{Color: color.NRGBA{R: 255, A: 255}}
	spec := &prefabs.HotspotsSpec{Groups: []prefabs.HotspotGroupSpec{{
		FontSize: 14,
		Vertical: true,
		Color:    groupFill,
		Spots: []prefabs.HotspotSpec{
			{Label: "A", X: 10, Y: 20, Width: 30, Height: 40},
			{Label: "B", Color: ownFill},
		},
	}}}

	got := BuildHotspots(spec)
	require.Len(t, got, 2)
	assert.Equal(t, cp.BB{L: 10, B: 20, R: 40, T: 60}, got[0].Bounds)
	assert.Equal(t, groupFill.Color, got[0].Fill)
	assert.Equal(t, ownFill.Color, got[1].Fill)
	assert.True(t, got[1].Vertical)
	assert.Equal(t, 14.0, got[1].FontSize)
	assert.Nil(t, BuildHotspots(nil))
}

func TestApplyGameSpecKeepsPosition(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	_, err = NewCamera(w, spec)
	require.NoError(t, err)
	e, err := NewTarget(w, spec)
	require.NoError(t, err)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	tr.Position = cp.Vector{X: 1, Y: 2}

	reloaded := *spec
	reloaded.Target.Radius = 9
	reloaded.Camera.EdgeFollow = prefabs.EdgeFollowAlways
	reloaded.BounceBack = true
	ApplyGameSpec(w, &reloaded)

	target, _ := ecs.Get(w, e, component.TargetComponent.Kind())
	trail, _ := ecs.Get(w, e, component.TrailComponent.Kind())
	_, cam, _ := ecs.First(w, component.CameraComponent.Kind())
	assert.Equal(t, 9.0, target.Radius)
	assert.Equal(t, spec.Trail.Rewind, trail.Rewind)
	assert.Equal(t, component.EdgeFollowAlways, cam.EdgeFollow)
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, tr.Position)
}
