package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/logger"
)

// DebugSystem handles debug-only keys: C copies the target's world
// coordinates, O toggles the collision overlay.
type DebugSystem struct {
	copyText   func(string) error
	keyPressed func(ebiten.Key) bool
}

func NewDebugSystem(copyText func(string) error) *DebugSystem {
	return &DebugSystem{copyText: copyText, keyPressed: inpututil.IsKeyJustPressed}
}

func (d *DebugSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok || !session.Debug {
		return
	}

	if d.keyPressed(ebiten.KeyO) {
		ecs.ForEach(w, component.MazeLayerComponent.Kind(), func(_ ecs.Entity, l *component.MazeLayer) {
			l.ShowOverlay = !l.ShowOverlay
		})
	}

	if !d.keyPressed(ebiten.KeyC) || d.copyText == nil {
		return
	}
	pos, _, ok := targetPosition(w)
	if !ok {
		return
	}
	coords := fmt.Sprintf("%.1f, %.1f", pos.X, pos.Y)
	log := logger.For("debug").WithField("coords", coords)
	if err := d.copyText(coords); err != nil {
		log.WithError(err).Warn("copy coordinates")
		return
	}
	log.Info("coordinates copied")
}
