package system

import (
	"image"
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
)

// pocketGrid is a 100x100 wall image with an open square from lo to hi
// inclusive on both axes.
func pocketGrid(t *testing.T, lo, hi int) *maze.Grid {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := color.NRGBA{A: 255}
			if x >= lo && x <= hi && y >= lo && y <= hi {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	g, err := maze.BuildGrid(img)
	require.NoError(t, err)
	return g
}

func readyWorld(t *testing.T, grid *maze.Grid) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	session := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{Phase: component.PhaseReady}))
	layer := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, layer, component.MazeLayerComponent.Kind(), &component.MazeLayer{Grid: grid}))
	return w
}

type targetParts struct {
	entity    ecs.Entity
	transform *component.Transform
	target    *component.Target
	request   *component.MoveRequest
	trail     *component.Trail
}

func addTarget(t *testing.T, w *ecs.World, at cp.Vector, step float64, rewind int) targetParts {
	t.Helper()
	p := targetParts{
		entity:    ecs.CreateEntity(w),
		transform: &component.Transform{Position: at},
		target:    &component.Target{Radius: 10, Step: step, Start: at},
		request:   &component.MoveRequest{},
		trail:     &component.Trail{Path: maze.NewTrail(16), Rewind: rewind},
	}
	require.NoError(t, ecs.Add(w, p.entity, component.TransformComponent.Kind(), p.transform))
	require.NoError(t, ecs.Add(w, p.entity, component.TargetComponent.Kind(), p.target))
	require.NoError(t, ecs.Add(w, p.entity, component.MoveRequestComponent.Kind(), p.request))
	require.NoError(t, ecs.Add(w, p.entity, component.TrailComponent.Kind(), p.trail))
	return p
}

func addCamera(t *testing.T, w *ecs.World, mode component.EdgeFollowMode) *maze.Camera {
	t.Helper()
	view := maze.NewCamera(1, 0.5, 4)
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		View:         view,
		EdgeFollow:   mode,
		EdgeFraction: 0.1,
		EdgeGain:     0.1,
	}))
	return view
}
