package assets

import (
	"bytes"
	"context"
	"embed"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	MazeImage   = "maze.png"
	SolvedImage = "solved.png"
)

//go:embed *.png
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// ReadSource returns the bytes of an image source. An empty override reads
// the embedded fallback; otherwise override is read from disk.
func ReadSource(override, fallback string) ([]byte, error) {
	if override == "" {
		b, err := LoadFile(fallback)
		return b, errors.Wrapf(err, "assets: embedded %s", fallback)
	}
	b, err := os.ReadFile(override)
	return b, errors.Wrapf(err, "assets: read %s", override)
}

// DecodeImage decodes PNG (or any registered format) bytes.
func DecodeImage(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "assets: decode")
	}
	return img, nil
}

// Sources names where the two maze images come from. Empty fields use the
// embedded images.
type Sources struct {
	Maze   string
	Solved string
}

// Images is the decoded pair, ready for grid building and upload to the GPU.
type Images struct {
	Maze   image.Image
	Solved image.Image
}

// LoadImages reads and decodes both images concurrently. It fails if either
// image fails, or if ctx is cancelled first.
func LoadImages(ctx context.Context, src Sources) (Images, error) {
	var out Images
	g, ctx := errgroup.WithContext(ctx)

	load := func(dst *image.Image, override, fallback string) func() error {
		return func() error {
			b, err := ReadSource(override, fallback)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := DecodeImage(b)
			if err != nil {
				return errors.WithMessage(err, fallback)
			}
			*dst = img
			return nil
		}
	}
	g.Go(load(&out.Maze, src.Maze, MazeImage))
	g.Go(load(&out.Solved, src.Solved, SolvedImage))

	if err := g.Wait(); err != nil {
		return Images{}, err
	}
	return out, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
