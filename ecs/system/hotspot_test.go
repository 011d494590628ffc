package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
)

type panelRecorder struct {
	titles []string
	texts  []string
}

func (p *panelRecorder) ShowDescription(title, text string) {
	p.titles = append(p.titles, title)
	p.texts = append(p.texts, text)
}

func (p *panelRecorder) HideDescription() {}

func TestHotspotTapShowsDescription(t *testing.T) {
	w := ecs.NewWorld()
	view := addCamera(t, w, component.EdgeFollowOff)
	view.ZoomAround(cp.Vector{}, 2)
	require.NoError(t, ecs.Add(w, ecs.CreateEntity(w), component.HotspotsComponent.Kind(), &component.Hotspots{
		Items: []maze.Hotspot{
			{Label: "Harbor", Description: "Ships come in here.", Bounds: cp.BB{L: 10, B: 10, R: 50, T: 50}},
		},
	}))

	panel := &panelRecorder{}
	s := NewHotspotSystem(panel)

	// zoom 2 maps world (20,20) to screen (40,40)
	w.Events().Push(ecs.Event{Kind: ecs.EventHotspotTapped, Data: cp.Vector{X: 40, Y: 40}})
	w.Events().Push(ecs.Event{Kind: ecs.EventHotspotTapped, Data: cp.Vector{X: 150, Y: 150}})
	s.Update(w)

	assert.Equal(t, []string{"Harbor"}, panel.titles)
	assert.Equal(t, []string{"Ships come in here."}, panel.texts)
}
