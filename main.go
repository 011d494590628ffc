package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.design/x/clipboard"

	"github.com/milk9111/starmaze/assets"
	"github.com/milk9111/starmaze/logger"
	"github.com/milk9111/starmaze/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (C copies target coordinates, O toggles the collision overlay)")
	overlay := flag.Bool("overlay", false, "start with the collision overlay visible")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mazePath := flag.String("maze", "", "maze image on disk (default: embedded)")
	solvedPath := flag.String("solved", "", "solved maze image on disk (default: embedded)")
	watch := flag.Bool("watch", true, "hot reload prefabs/*.yaml")
	flag.Parse()

	logger.SetDebug(*debug)
	log := logger.For("main")

	prefsPath, err := prefabs.PrefsPath()
	if err != nil {
		log.WithError(err).Warn("prefs disabled")
	}
	var prefs prefabs.Prefs
	if prefsPath != "" {
		if prefs, err = prefabs.LoadPrefs(prefsPath); err != nil {
			log.WithError(err).Warn("ignoring prefs")
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("starmaze")

	opts := Options{
		Debug:       *debug,
		ShowOverlay: *overlay,
		Sources:     assets.Sources{Maze: *mazePath, Solved: *solvedPath},
		Watch:       *watch,
		PrefsPath:   prefsPath,
		Prefs:       prefs,
		CopyText:    clipboardWriter(),
	}
	create := func() (closableGame, error) { return NewGame(opts) }
	if err := run(create, ebiten.RunGame); err != nil {
		log.WithError(err).Fatal("starmaze")
	}
}

type closableGame interface {
	ebiten.Game
	Close()
}

// run owns the game for the life of the loop so Close runs before main exits.
func run(create func() (closableGame, error), loop func(ebiten.Game) error) error {
	game, err := create()
	if err != nil {
		return errors.Wrap(err, "create game")
	}
	defer game.Close()

	return errors.Wrap(loop(game), "run game")
}

// clipboardWriter returns a text copier, or one that always fails when the
// platform clipboard is unavailable.
func clipboardWriter() func(string) error {
	if err := clipboard.Init(); err != nil {
		err = errors.Wrap(err, "clipboard unavailable")
		return func(string) error { return err }
	}
	return func(s string) error {
		clipboard.Write(clipboard.FmtText, []byte(s))
		return nil
	}
}
