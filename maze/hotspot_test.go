package maze

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotspotAt(t *testing.T) {
	spots := []Hotspot{
		{Label: "dock", Bounds: cp.BB{L: 100, B: 100, R: 200, T: 150}},
		{Label: "tower", Bounds: cp.BB{L: 180, B: 120, R: 220, T: 300}},
	}
	cam := NewCamera(1, DefaultMinZoom, DefaultMaxZoom)

	cases := []struct {
		name   string
		screen cp.Vector
		want   string
	}{
		{"inside_first", cp.Vector{X: 120, Y: 110}, "dock"},
		{"overlap_prefers_last", cp.Vector{X: 190, Y: 130}, "tower"},
		{"edge_inclusive", cp.Vector{X: 100, Y: 150}, "dock"},
		{"miss", cp.Vector{X: 50, Y: 50}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, ok := HotspotAt(spots, cam, c.screen)
			assert.Equal(t, c.want != "", ok)
			assert.Equal(t, c.want, h.Label)
		})
	}

	t.Run("follows_camera", func(t *testing.T) {
		require.True(t, cam.ZoomAround(cp.Vector{}, 2))
		cam.Pan(cp.Vector{X: -100, Y: -100})
		// world (150,125) -> screen (200,150)
		h, ok := HotspotAt(spots, cam, cp.Vector{X: 200, Y: 150})
		require.True(t, ok)
		assert.Equal(t, "dock", h.Label)
	})
}
