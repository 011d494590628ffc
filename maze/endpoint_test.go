package maze

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestEndpointLatch(t *testing.T) {
	e := NewEndpoint(cp.Vector{X: 1852, Y: 798}, 30)

	assert.False(t, e.Check(cp.Vector{X: 440, Y: 268}, 2))
	assert.False(t, e.Reached())

	// Exactly on the combined radius does not count.
	assert.False(t, e.Check(cp.Vector{X: 1852 + 32, Y: 798}, 2))

	assert.True(t, e.Check(cp.Vector{X: 1852 + 31, Y: 798}, 2))
	assert.True(t, e.Reached())

	for _, p := range []cp.Vector{{}, {X: 1852, Y: 798}, {X: -1e6, Y: 1e6}} {
		assert.False(t, e.Check(p, 2), "latch fires once")
		assert.True(t, e.Reached())
	}
}
