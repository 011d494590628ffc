package system

import (
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/starmaze/common"
	"github.com/milk9111/starmaze/control"
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/maze"
)

var overlayColor = color.RGBA{R: 255, A: 77}

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil {
		return
	}
	screen.Fill(colornames.White)

	_, session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	switch session.Phase {
	case component.PhaseLoading:
		drawMessage(screen, "Loading maze...", colornames.Dimgray)
		return
	case component.PhaseFailed:
		msg := "Failed to load maze"
		if session.Err != nil {
			msg += "\n" + session.Err.Error()
		}
		drawMessage(screen, msg, colornames.Firebrick)
		return
	}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok || cam.View == nil {
		return
	}
	view := cam.View

	var completion *component.Completion
	if _, c, ok := ecs.First(w, component.CompletionComponent.Kind()); ok {
		completion = c
	}

	if _, layer, ok := ecs.First(w, component.MazeLayerComponent.Kind()); ok {
		r.drawMaze(screen, view, layer, completion)
	}

	entities := ecs.Entities(w)
	layered := entities[:0]
	for _, e := range entities {
		if ecs.Has(w, e, component.RenderLayerComponent.Kind()) {
			layered = append(layered, e)
		}
	}
	sort.SliceStable(layered, func(i, j int) bool {
		li, _ := ecs.Get(w, layered[i], component.RenderLayerComponent.Kind())
		lj, _ := ecs.Get(w, layered[j], component.RenderLayerComponent.Kind())
		return li.Index < lj.Index
	})

	for _, e := range layered {
		if h, ok := ecs.Get(w, e, component.HotspotsComponent.Kind()); ok {
			drawHotspots(screen, view, h.Items)
		}
		if ep, ok := ecs.Get(w, e, component.EndpointComponent.Kind()); ok {
			drawEndpoint(screen, view, ep)
		}
		if trail, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok {
			drawTrail(screen, view, trail)
		}
		t, hasT := ecs.Get(w, e, component.TransformComponent.Kind())
		tg, hasTarget := ecs.Get(w, e, component.TargetComponent.Kind())
		if hasT && hasTarget {
			drawTarget(screen, view, t.Position, tg)
		}
	}

	ecs.ForEach(w, component.JoystickComponent.Kind(), func(_ ecs.Entity, j *component.Joystick) {
		if j.Visible && j.Stick != nil {
			drawJoystick(screen, j)
		}
	})

	if completion != nil {
		drawCompletion(screen, completion)
	}
}

func (r *RenderSystem) drawMaze(screen *ebiten.Image, view *maze.Camera, layer *component.MazeLayer, c *component.Completion) {
	op := worldImageOptions(view)
	if layer.Image != nil {
		screen.DrawImage(layer.Image, op)
	}
	if layer.Solved != nil && c != nil && c.OverlayAlpha > 0 {
		op := worldImageOptions(view)
		op.ColorScale.ScaleAlpha(float32(c.OverlayAlpha))
		screen.DrawImage(layer.Solved, op)
	}
	if layer.ShowOverlay && layer.Grid.Ready() {
		if layer.Overlay == nil {
			layer.Overlay = collisionOverlay(layer.Grid)
		}
		screen.DrawImage(layer.Overlay, worldImageOptions(view))
	}
}

func worldImageOptions(view *maze.Camera) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(view.Zoom(), view.Zoom())
	off := view.Offset()
	op.GeoM.Translate(off.X, off.Y)
	return op
}

// collisionOverlay paints every obstacle cell translucent red.
func collisionOverlay(g *maze.Grid) *ebiten.Image {
	w, h := g.Width(), g.Height()
	pix := make([]byte, w*h*4)
	// premultiplied alpha
	r := byte(uint16(overlayColor.R) * uint16(overlayColor.A) / 255)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.Cell(x, y) {
				continue
			}
			i := (y*w + x) * 4
			pix[i] = r
			pix[i+3] = overlayColor.A
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

func drawHotspots(screen *ebiten.Image, view *maze.Camera, spots []maze.Hotspot) {
	for _, spot := range spots {
		rect := view.ScreenRect(spot.Bounds)
		x, y := float32(rect.L), float32(rect.B)
		w, h := float32(rect.R-rect.L), float32(rect.T-rect.B)
		if spot.Fill != nil {
			vector.FillRect(screen, x, y, w, h, spot.Fill, false)
		}
		vector.StrokeRect(screen, x, y, w, h, 1, colornames.Black, false)

		if spot.Label == "" || spot.FontSize <= 0 {
			continue
		}
		face := regularFace(spot.FontSize * view.Zoom())
		if face == nil {
			continue
		}
		label := spot.Label
		if spot.Vertical {
			label = strings.Join(strings.Split(label, ""), "\n")
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
		op.ColorScale.ScaleWithColor(colornames.Black)
		op.LineSpacing = face.Size
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, label, face, op)
	}
}

func drawEndpoint(screen *ebiten.Image, view *maze.Camera, ep *component.Endpoint) {
	if ep.Goal == nil {
		return
	}
	p := view.WorldToScreen(ep.Goal.Position)
	r := float32(ep.Goal.Radius * view.Zoom())
	clr := ep.Color
	if clr == nil {
		clr = colornames.Green
	}
	vector.FillCircle(screen, float32(p.X), float32(p.Y), r, clr, true)
}

func drawTrail(screen *ebiten.Image, view *maze.Camera, trail *component.Trail) {
	if trail.Path == nil || trail.Path.Len() < 2 {
		return
	}
	clr := withAlpha(trail.Color, trail.Opacity)
	width := float32(trail.Width * view.Zoom())
	prev := view.WorldToScreen(trail.Path.At(0))
	for i := 1; i < trail.Path.Len(); i++ {
		next := view.WorldToScreen(trail.Path.At(i))
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), width, clr, true)
		prev = next
	}
}

func drawTarget(screen *ebiten.Image, view *maze.Camera, pos cp.Vector, tg *component.Target) {
	p := view.WorldToScreen(pos)
	r := float32(tg.Radius * view.Zoom())
	fill := tg.IdleColor
	if tg.State == component.TargetFollowing {
		fill = tg.FollowingColor
	}
	vector.FillCircle(screen, float32(p.X), float32(p.Y), r+2, tg.BorderColor, true)
	vector.FillCircle(screen, float32(p.X), float32(p.Y), r, fill, true)
}

func drawJoystick(screen *ebiten.Image, j *component.Joystick) {
	c := j.Stick.Center()
	h := c.Add(j.Stick.Handle())
	base := color.RGBA{R: 60, G: 60, B: 60, A: 90}
	knob := color.RGBA{R: 30, G: 30, B: 30, A: 160}
	if j.Stick.Active() {
		knob.A = 220
	}
	vector.FillCircle(screen, float32(c.X), float32(c.Y), control.StickSize/2, base, true)
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), control.StickSize/2, 2, knob, true)
	vector.FillCircle(screen, float32(h.X), float32(h.Y), control.StickHandle/2, knob, true)
}

func drawCompletion(screen *ebiten.Image, c *component.Completion) {
	if c.Stage == component.CompletionHidden {
		return
	}
	if c.ShadeColor != nil && c.OverlayAlpha > 0 {
		shade := withAlpha(c.ShadeColor, c.OverlayAlpha*0.35)
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, shade, false)
	}
	if c.TextAlpha <= 0 || c.Message == "" {
		return
	}
	face := boldFace(c.FontSize)
	if face == nil {
		return
	}
	x := float64(common.BaseWidth) / 2
	y := float64(common.BaseHeight)/2 + BobOffset(c)

	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+4, y+4)
	shadow.ColorScale.ScaleWithColor(colornames.Black)
	shadow.ColorScale.ScaleAlpha(float32(c.TextAlpha * 0.5))
	shadow.PrimaryAlign = text.AlignCenter
	shadow.SecondaryAlign = text.AlignCenter
	text.Draw(screen, c.Message, face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.TextColor)
	op.ColorScale.ScaleAlpha(float32(c.TextAlpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, c.Message, face, op)
}

func drawMessage(screen *ebiten.Image, msg string, clr color.Color) {
	face := regularFace(36)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(common.BaseWidth)/2, float64(common.BaseHeight)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 48
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return color.Transparent
	}
	r, g, b, a := c.RGBA()
	f := common.Clamp(alpha, 0, 1)
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}
