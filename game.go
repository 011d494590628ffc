package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/assets"
	"github.com/milk9111/starmaze/common"
	"github.com/milk9111/starmaze/control"
	"github.com/milk9111/starmaze/ecs"
	"github.com/milk9111/starmaze/ecs/component"
	"github.com/milk9111/starmaze/ecs/entity"
	"github.com/milk9111/starmaze/ecs/system"
	"github.com/milk9111/starmaze/logger"
	"github.com/milk9111/starmaze/maze"
	"github.com/milk9111/starmaze/prefabs"
)

// Options are the process-level settings main collects from flags.
type Options struct {
	Debug       bool
	ShowOverlay bool
	Sources     assets.Sources
	Watch       bool
	PrefsPath   string
	Prefs       prefabs.Prefs
	CopyText    func(string) error
}

type loadResult struct {
	images assets.Images
	grid   *maze.Grid
	err    error
}

type Game struct {
	opts  Options
	world *ecs.World
	ui    *GameUI
	log   *logrus.Entry

	agg   *control.Aggregator
	stick *control.VirtualStick
	pad   *control.Gamepad
	input *system.InputSystem

	watcher *prefabs.Watcher
	loaded  chan loadResult
	cancel  context.CancelFunc
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	hotspots, err := prefabs.LoadHotspotsSpec()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, opts.Debug); err != nil {
		return nil, err
	}
	if _, err := entity.NewMazeLayer(w, opts.ShowOverlay); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(w, spec); err != nil {
		return nil, err
	}
	if _, err := entity.NewHotspots(w, hotspots); err != nil {
		return nil, err
	}
	if _, err := entity.NewEndpoint(w, spec); err != nil {
		return nil, err
	}
	if _, err := entity.NewTarget(w, spec); err != nil {
		return nil, err
	}
	if _, err := entity.NewCompletion(w, spec); err != nil {
		return nil, err
	}

	cam, _ := entity.CameraOf(w)
	session, _ := entity.SessionOf(w)

	g := &Game{
		opts:   opts,
		world:  w,
		ui:     NewGameUI(spec.Rules),
		log:    logger.For("game").WithField("session", session.ID.String()),
		agg:    control.NewAggregator(cam, inputConfig(spec)),
		stick:  control.NewVirtualStick(joystickAnchor(spec, opts.Prefs)),
		pad:    control.NewGamepad(spec.Input.GamepadDeadZone),
		loaded: make(chan loadResult, 1),
	}
	g.agg.Attach(g.stick)
	g.agg.Attach(g.pad)
	if _, err := entity.NewJoystick(w, g.stick, spec.Joystick.Visible); err != nil {
		return nil, err
	}

	g.input = system.NewInputSystem(g.agg, g.stick, g.pad)
	w.AddSystem(g.input)
	w.AddSystem(system.NewMotionSystem())
	w.AddSystem(system.NewEndpointSystem(g.agg))
	w.AddSystem(system.NewCameraSystem(g.agg.TouchSeen))
	w.AddSystem(system.NewCompletionSystem())
	w.AddSystem(system.NewHotspotSystem(g.ui))
	w.AddSystem(system.NewDebugSystem(opts.CopyText))
	w.AddSystem(system.NewRenderSystem())

	if opts.Watch {
		if watcher, err := prefabs.NewWatcher("prefabs"); err != nil {
			g.log.WithError(err).Warn("spec hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	go g.load(ctx, opts.Sources)

	g.log.WithFields(logrus.Fields{
		"name":  spec.Name,
		"debug": opts.Debug,
	}).Info("game created")
	return g, nil
}

// load runs off the game loop. The result is picked up by Update.
func (g *Game) load(ctx context.Context, src assets.Sources) {
	images, err := assets.LoadImages(ctx, src)
	if err != nil {
		g.loaded <- loadResult{err: errors.Wrap(err, "load maze images")}
		return
	}
	grid, err := maze.BuildGrid(images.Maze)
	if err != nil {
		g.loaded <- loadResult{err: errors.Wrap(err, "build collision grid")}
		return
	}
	g.loaded <- loadResult{images: images, grid: grid}
}

func (g *Game) finishLoad(res loadResult) {
	session, ok := entity.SessionOf(g.world)
	if !ok {
		return
	}
	if res.err != nil {
		session.Phase = component.PhaseFailed
		session.Err = res.err
		g.log.WithError(res.err).Error("maze load failed")
		return
	}

	ecs.ForEach(g.world, component.MazeLayerComponent.Kind(), func(_ ecs.Entity, l *component.MazeLayer) {
		l.Grid = res.grid
		l.Image = ebiten.NewImageFromImage(res.images.Maze)
		l.Solved = ebiten.NewImageFromImage(res.images.Solved)
	})
	session.Phase = component.PhaseReady
	g.log.WithField("obstacles", res.grid.Obstacles()).Info("maze ready")
}

func (g *Game) Update() error {
	select {
	case res := <-g.loaded:
		g.finishLoad(res)
	default:
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyJ) && !g.stick.Active() {
		g.moveJoystick()
	}

	g.input.Suspended = g.ui.RulesOpen()
	g.ui.UI.Update()
	g.world.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.WithError(err).Warn("spec watcher")
			}
		default:
			return
		}
	}
}

// reload applies a changed spec file. A spec that fails to load leaves the
// running values untouched.
func (g *Game) reload(name string) {
	log := g.log.WithField("file", name)
	switch name {
	case prefabs.GameFile:
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			log.WithError(err).Warn("reload failed, keeping previous spec")
			return
		}
		entity.ApplyGameSpec(g.world, spec)
		g.agg.SetConfig(inputConfig(spec))
		g.pad.DeadZone = spec.Input.GamepadDeadZone
		g.ui.SetRules(spec.Rules)
		ecs.ForEach(g.world, component.JoystickComponent.Kind(), func(_ ecs.Entity, j *component.Joystick) {
			j.Visible = spec.Joystick.Visible
		})
	case prefabs.HotspotsFile:
		spec, err := prefabs.LoadHotspotsSpec()
		if err != nil {
			log.WithError(err).Warn("reload failed, keeping previous hotspots")
			return
		}
		entity.ApplyHotspots(g.world, spec)
	default:
		return
	}
	log.Info("spec reloaded")
}

// moveJoystick re-anchors the on-screen stick under the cursor and saves it.
func (g *Game) moveJoystick() {
	x, y := ebiten.CursorPosition()
	p := cp.Vector{X: float64(x), Y: float64(y)}
	g.stick.SetCenter(p)
	g.opts.Prefs.Joystick = &prefabs.PointSpec{X: p.X, Y: p.Y}
	if g.opts.PrefsPath == "" {
		return
	}
	if err := prefabs.SavePrefs(g.opts.PrefsPath, g.opts.Prefs); err != nil {
		g.log.WithError(err).Warn("save prefs")
		return
	}
	g.log.WithField("joystick", p).Debug("prefs saved")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.ui.UI.Draw(screen)

	session, ok := entity.SessionOf(g.world)
	if !ok || !session.Debug {
		return
	}
	cam, _ := entity.CameraOf(g.world)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  zoom: %.2f  loop: %s", ebiten.ActualFPS(), cam.Zoom(), g.agg.Active()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops background work. Safe to call once the loop has exited.
func (g *Game) Close() {
	g.cancel()
	g.agg.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.WithError(err).Warn("close watcher")
		}
	}
}

func inputConfig(spec *prefabs.GameSpec) control.Config {
	cfg := control.DefaultConfig()
	in := spec.Input
	if in.ZoomSpeed > 0 {
		cfg.ZoomSpeed = in.ZoomSpeed
	}
	if in.JoystickSpeed > 0 {
		cfg.JoystickSpeed = in.JoystickSpeed
	}
	if in.TargetSpeed > 0 {
		cfg.TargetSpeed = in.TargetSpeed
	}
	if in.PanSpeed > 0 {
		cfg.PanSpeed = in.PanSpeed
	}
	if in.JoystickPeriod > 0 {
		cfg.JoystickPeriod = in.JoystickPeriod
	}
	if in.KeyboardPeriod > 0 {
		cfg.KeyboardPeriod = in.KeyboardPeriod
	}
	if in.PanPeriod > 0 {
		cfg.PanPeriod = in.PanPeriod
	}
	if in.TapSlop > 0 {
		cfg.TapSlop = in.TapSlop
	}
	if in.DeadZone > 0 {
		cfg.DeadZone = in.DeadZone
	}
	return cfg
}

// joystickAnchor prefers the saved anchor over the spec default.
func joystickAnchor(spec *prefabs.GameSpec, prefs prefabs.Prefs) cp.Vector {
	if prefs.Joystick != nil {
		return cp.Vector{X: prefs.Joystick.X, Y: prefs.Joystick.Y}
	}
	return cp.Vector{X: spec.Joystick.X, Y: spec.Joystick.Y}
}
