package component

// RenderLayer sorts world draw order. Lower layers draw first; ties keep
// entity order.
type RenderLayer struct {
	Index int
}

const (
	LayerHotspots = iota * 10
	LayerEndpoint
	LayerTrail
	LayerTarget
)

var RenderLayerComponent = NewComponent[RenderLayer]()
