package maze

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallImage returns a w x h white image with the given cells painted black.
func wallImage(w, h int, walls ...image.Point) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for _, p := range walls {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{A: 255})
	}
	return img
}

// verticalWall builds a 10x10 grid blocked along x = col.
func verticalWall(t *testing.T, col int) *Grid {
	t.Helper()
	var walls []image.Point
	for y := 0; y < 10; y++ {
		walls = append(walls, image.Pt(col, y))
	}
	g, err := BuildGrid(wallImage(10, 10, walls...))
	require.NoError(t, err)
	return g
}

func TestBuildGridPixelClassification(t *testing.T) {
	cases := []struct {
		name string
		c    color.NRGBA
		want bool
	}{
		{"black", color.NRGBA{0, 0, 0, 255}, true},
		{"threshold", color.NRGBA{20, 20, 20, 255}, true},
		{"one_channel_over", color.NRGBA{20, 21, 20, 255}, false},
		{"dark_translucent", color.NRGBA{10, 10, 10, 1}, true},
		{"transparent_black", color.NRGBA{0, 0, 0, 0}, false},
		{"white", color.NRGBA{255, 255, 255, 255}, false},
		{"red", color.NRGBA{255, 0, 0, 255}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
			img.SetNRGBA(1, 1, c.c)
			g, err := BuildGrid(img)
			require.NoError(t, err)
			assert.Equal(t, c.want, g.IsObstacle(1, 1))
		})
	}
}

func TestBuildGridGenericImage(t *testing.T) {
	// image.RGBA is premultiplied and goes through the color model path.
	img := image.NewRGBA(image.Rect(5, 5, 9, 8))
	for y := 5; y < 8; y++ {
		for x := 5; x < 9; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(6, 7, color.Black)

	g, err := BuildGrid(img)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 1, g.Obstacles())
	assert.True(t, g.IsObstacle(1, 2))
	assert.False(t, g.IsObstacle(0, 0))
}

func TestBuildGridErrors(t *testing.T) {
	_, err := BuildGrid(nil)
	assert.ErrorIs(t, err, ErrImageNotLoaded)

	_, err = BuildGrid(image.NewNRGBA(image.Rect(0, 0, 0, 4)))
	assert.Equal(t, ErrEmptyImage, errors.Cause(err))
}

func TestIsObstacleBounds(t *testing.T) {
	g, err := BuildGrid(wallImage(4, 4))
	require.NoError(t, err)

	for _, p := range [][2]float64{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-0.6, 2}} {
		assert.True(t, g.IsObstacle(p[0], p[1]), "point %v", p)
	}
	assert.False(t, g.IsObstacle(3.4, 3.4))
	assert.True(t, g.IsObstacle(3.5, 0), "3.5 rounds to column 4")
}

func TestGridNotBuilt(t *testing.T) {
	var g *Grid
	assert.False(t, g.Ready())
	assert.False(t, g.IsObstacle(1, 1))
	assert.False(t, g.SegmentBlocked(0, 0, 50, 50))
	assert.Zero(t, g.Width())
}

func TestSegmentBlocked(t *testing.T) {
	g := verticalWall(t, 5)

	t.Run("zero_length", func(t *testing.T) {
		assert.False(t, g.SegmentBlocked(2, 2, 2, 2))
		assert.False(t, g.SegmentBlocked(5, 5, 5, 5), "zero length never self-collides")
	})
	t.Run("crossing_wall", func(t *testing.T) {
		assert.True(t, g.SegmentBlocked(0, 5, 9, 5))
		assert.True(t, g.SegmentBlocked(4, 0, 6, 9))
	})
	t.Run("parallel_to_wall", func(t *testing.T) {
		assert.False(t, g.SegmentBlocked(4, 0, 4, 9))
		assert.False(t, g.SegmentBlocked(6, 9, 9, 0))
	})
	t.Run("leaving_grid", func(t *testing.T) {
		assert.True(t, g.SegmentBlocked(1, 1, -3, 1))
	})
}
