// Command mazegen writes a maze image and its solved twin in the format the
// game loads: black walls on white, solution traced in gold.
package main

import (
	"flag"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/starmaze/common"
	"github.com/milk9111/starmaze/logger"
)

func main() {
	cfg := Config{}
	flag.IntVar(&cfg.Width, "w", common.BaseWidth, "image width in pixels")
	flag.IntVar(&cfg.Height, "h", common.BaseHeight, "image height in pixels")
	flag.IntVar(&cfg.Cell, "cell", 60, "cell size in pixels")
	flag.IntVar(&cfg.Wall, "wall", 6, "wall thickness in pixels")
	flag.Int64Var(&cfg.Seed, "seed", 1, "random seed")
	flag.IntVar(&cfg.Start.X, "sx", 7, "start cell column")
	flag.IntVar(&cfg.Start.Y, "sy", 4, "start cell row")
	flag.IntVar(&cfg.End.X, "ex", 30, "end cell column")
	flag.IntVar(&cfg.End.Y, "ey", 13, "end cell row")
	out := flag.String("o", "maze.png", "output path; the solved image is written next to it with a _solved suffix")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger.SetDebug(*verbose)
	log := logger.For("mazegen")

	if err := run(cfg, *out); err != nil {
		log.WithError(err).Fatal("mazegen failed")
	}
}

func run(cfg Config, out string) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	m := Generate(cfg)
	plain, solved := Render(m, cfg)

	solvedOut := solvedPath(out)
	if err := writePNG(out, plain); err != nil {
		return err
	}
	if err := writePNG(solvedOut, solved); err != nil {
		return err
	}
	logger.For("mazegen").WithFields(logrus.Fields{
		"cols":   m.Cols,
		"rows":   m.Rows,
		"seed":   cfg.Seed,
		"maze":   out,
		"solved": solvedOut,
	}).Info("maze written")
	return nil
}

func solvedPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_solved" + ext
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
