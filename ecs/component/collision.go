package component

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starmaze/maze"
)

// MazeLayer holds the loaded maze. All fields are nil until loading
// completes.
type MazeLayer struct {
	Grid   *maze.Grid
	Image  *ebiten.Image
	Solved *ebiten.Image
	// Overlay is the debug collision view, built lazily from Grid.
	Overlay     *ebiten.Image
	ShowOverlay bool
}

var MazeLayerComponent = NewComponent[MazeLayer]()
