package maze

import (
	"image"
	"image/color"
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/logger"
)

// Pixels at or below this value on every color channel count as wall.
const obstacleChannelMax = 20

// Minimum number of samples taken along a segment, regardless of its length.
const minSegmentSamples = 10

var (
	ErrImageNotLoaded = errors.New("maze: image not loaded")
	ErrEmptyImage     = errors.New("maze: image has zero dimensions")
)

// Grid is a per-pixel obstacle map in world (image) space. It is immutable
// once built. A nil *Grid is valid and answers every query as "not blocked"
// so callers running before the maze is ready never crash.
type Grid struct {
	width, height int
	cells         []bool // row-major, cells[row*width+col]
	obstacles     int
}

var warnedMissingGrid atomic.Bool

// BuildGrid scans every pixel of img and marks near-black, non-transparent
// pixels as obstacles.
func BuildGrid(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, ErrImageNotLoaded
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "bounds %v", b)
	}

	g := &Grid{width: w, height: h, cells: make([]bool, w*h)}
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
			for x := 0; x < w; x++ {
				px := row[x*4 : x*4+4]
				g.set(x, y, isWallPixel(color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}))
			}
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				g.set(x, y, isWallPixel(c))
			}
		}
	}

	logger.For("collision").WithFields(logrus.Fields{
		"width":     w,
		"height":    h,
		"obstacles": g.obstacles,
	}).Info("collision grid built")
	return g, nil
}

func isWallPixel(c color.NRGBA) bool {
	return c.R <= obstacleChannelMax && c.G <= obstacleChannelMax && c.B <= obstacleChannelMax && c.A > 0
}

func (g *Grid) set(x, y int, wall bool) {
	if !wall {
		return
	}
	g.cells[y*g.width+x] = true
	g.obstacles++
}

// Ready reports whether the grid has been built.
func (g *Grid) Ready() bool {
	return g != nil && len(g.cells) > 0
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Obstacles returns the number of obstacle cells.
func (g *Grid) Obstacles() int {
	if g == nil {
		return 0
	}
	return g.obstacles
}

// Cell reports whether the integer cell (col, row) is an obstacle.
// Out-of-bounds cells are obstacles.
func (g *Grid) Cell(col, row int) bool {
	if g == nil {
		return false
	}
	if col < 0 || row < 0 || col >= g.width || row >= g.height {
		return true
	}
	return g.cells[row*g.width+col]
}

// IsObstacle rounds (x, y) to the nearest cell and reports whether it blocks
// movement. Anything outside the grid is blocked.
func (g *Grid) IsObstacle(x, y float64) bool {
	if !g.Ready() {
		warnMissing("IsObstacle")
		return false
	}
	return g.Cell(roundCell(x), roundCell(y))
}

// SegmentBlocked supersamples the segment (x1,y1)-(x2,y2) at
// max(ceil(length), 10) evenly spaced steps, both ends included, and reports
// whether any sample lands on an obstacle. A zero-length segment is never
// blocked.
func (g *Grid) SegmentBlocked(x1, y1, x2, y2 float64) bool {
	if !g.Ready() {
		warnMissing("SegmentBlocked")
		return false
	}
	if x1 == x2 && y1 == y2 {
		return false
	}

	dx, dy := x2-x1, y2-y1
	steps := int(math.Ceil(math.Hypot(dx, dy)))
	if steps < minSegmentSamples {
		steps = minSegmentSamples
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if g.Cell(roundCell(x1+dx*t), roundCell(y1+dy*t)) {
			return true
		}
	}
	return false
}

// roundCell rounds half up, matching how pixel coordinates snap to cells.
func roundCell(v float64) int {
	return int(math.Floor(v + 0.5))
}

func warnMissing(op string) {
	entry := logger.For("collision").WithField("op", op)
	if warnedMissingGrid.CompareAndSwap(false, true) {
		entry.Warn("collision grid not generated yet")
		return
	}
	entry.Debug("collision grid not generated yet")
}
