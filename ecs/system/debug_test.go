package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
)

func debugSystem(copied *[]string, keys ...ebiten.Key) *DebugSystem {
	d := NewDebugSystem(func(s string) error {
		*copied = append(*copied, s)
		return nil
	})
	d.keyPressed = func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
	return d
}

func TestDebugCopiesCoordinates(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 0, 99))
	_, s, _ := ecs.First(w, component.SessionComponent.Kind())
	s.Debug = true
	addTarget(t, w, cp.Vector{X: 12.34, Y: 40}, 5, 0)

	var copied []string
	debugSystem(&copied, ebiten.KeyC).Update(w)

	assert.Equal(t, []string{"12.3, 40.0"}, copied)
}

func TestDebugTogglesOverlay(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 0, 99))
	_, s, _ := ecs.First(w, component.SessionComponent.Kind())
	s.Debug = true
	_, layer, _ := ecs.First(w, component.MazeLayerComponent.Kind())

	var copied []string
	d := debugSystem(&copied, ebiten.KeyO)
	d.Update(w)
	assert.True(t, layer.ShowOverlay)
	d.Update(w)
	assert.False(t, layer.ShowOverlay)
	assert.Empty(t, copied)
}

func TestDebugKeysNeedDebugSession(t *testing.T) {
	w := readyWorld(t, pocketGrid(t, 0, 99))
	addTarget(t, w, cp.Vector{X: 1, Y: 2}, 5, 0)
	_, layer, _ := ecs.First(w, component.MazeLayerComponent.Kind())

	var copied []string
	debugSystem(&copied, ebiten.KeyC, ebiten.KeyO).Update(w)

	assert.Empty(t, copied)
	assert.False(t, layer.ShowOverlay)
}
