package main

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/pkg/errors"
)

// Wall bits per cell.
const (
	wallN uint8 = 1 << iota
	wallE
	wallS
	wallW
	allWalls = wallN | wallE | wallS | wallW
)

var (
	wallColor  = color.NRGBA{A: 255}
	floorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pathColor  = color.NRGBA{R: 255, G: 215, A: 255}
)

type Config struct {
	Width, Height int
	Cell, Wall    int
	Seed          int64
	Start, End    image.Point // cell coordinates
}

func (c Config) cols() int { return c.Width / c.Cell }
func (c Config) rows() int { return c.Height / c.Cell }

func (c Config) Validate() error {
	switch {
	case c.Cell <= 0 || c.Wall <= 0:
		return errors.Errorf("cell %d and wall %d must be positive", c.Cell, c.Wall)
	case c.Wall >= c.Cell:
		return errors.Errorf("wall %d must be thinner than cell %d", c.Wall, c.Cell)
	case c.cols() < 2 || c.rows() < 2:
		return errors.Errorf("%dx%d image holds fewer than 2x2 cells of %d px", c.Width, c.Height, c.Cell)
	}
	bounds := image.Rect(0, 0, c.cols(), c.rows())
	if !c.Start.In(bounds) || !c.End.In(bounds) {
		return errors.Errorf("start %v and end %v must lie inside %v", c.Start, c.End, bounds)
	}
	return nil
}

// Maze is a perfect maze: exactly one path joins any two cells.
type Maze struct {
	Cols, Rows int
	walls      []uint8
}

func (m *Maze) at(p image.Point) uint8 { return m.walls[p.Y*m.Cols+p.X] }

func (m *Maze) Open(p image.Point, bit uint8) bool {
	return m.at(p)&bit == 0
}

var steps = []struct {
	d         image.Point
	bit, back uint8
}{
	{image.Pt(0, -1), wallN, wallS},
	{image.Pt(1, 0), wallE, wallW},
	{image.Pt(0, 1), wallS, wallN},
	{image.Pt(-1, 0), wallW, wallE},
}

// Generate carves a maze with an iterative randomized depth-first search
// starting at cfg.Start. The same seed always yields the same maze.
func Generate(cfg Config) *Maze {
	m := &Maze{Cols: cfg.cols(), Rows: cfg.rows()}
	m.walls = make([]uint8, m.Cols*m.Rows)
	for i := range m.walls {
		m.walls[i] = allWalls
	}
	bounds := image.Rect(0, 0, m.Cols, m.Rows)
	rng := rand.New(rand.NewSource(cfg.Seed))
	visited := make([]bool, len(m.walls))
	idx := func(p image.Point) int { return p.Y*m.Cols + p.X }

	stack := []image.Point{cfg.Start}
	visited[idx(cfg.Start)] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var options []int
		for i, s := range steps {
			next := cur.Add(s.d)
			if next.In(bounds) && !visited[idx(next)] {
				options = append(options, i)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		s := steps[options[rng.Intn(len(options))]]
		next := cur.Add(s.d)
		m.walls[idx(cur)] &^= s.bit
		m.walls[idx(next)] &^= s.back
		visited[idx(next)] = true
		stack = append(stack, next)
	}
	return m
}

// Solve returns the cells from start to end inclusive.
func (m *Maze) Solve(start, end image.Point) []image.Point {
	prev := make(map[image.Point]image.Point, len(m.walls))
	prev[start] = start
	queue := []image.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}
		for _, s := range steps {
			if !m.Open(cur, s.bit) {
				continue
			}
			next := cur.Add(s.d)
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}
	if _, ok := prev[end]; !ok {
		return nil
	}
	var path []image.Point
	for p := end; p != start; p = prev[p] {
		path = append(path, p)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Render draws the maze in black on white and a copy with the solution
// traced in gold.
func Render(m *Maze, cfg Config) (plain, solved *image.NRGBA) {
	rect := image.Rect(0, 0, cfg.Width, cfg.Height)
	plain = image.NewNRGBA(rect)
	draw.Draw(plain, rect, &image.Uniform{C: floorColor}, image.Point{}, draw.Src)

	half := cfg.Wall / 2
	wall := func(r image.Rectangle) {
		draw.Draw(plain, r.Intersect(rect), &image.Uniform{C: wallColor}, image.Point{}, draw.Src)
	}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			p := image.Pt(x, y)
			x0, y0 := x*cfg.Cell, y*cfg.Cell
			x1, y1 := x0+cfg.Cell, y0+cfg.Cell
			if !m.Open(p, wallN) {
				wall(image.Rect(x0-half, y0-half, x1+half, y0+half))
			}
			if !m.Open(p, wallW) {
				wall(image.Rect(x0-half, y0-half, x0+half, y1+half))
			}
			if !m.Open(p, wallS) {
				wall(image.Rect(x0-half, y1-half, x1+half, y1+half))
			}
			if !m.Open(p, wallE) {
				wall(image.Rect(x1-half, y0-half, x1+half, y1+half))
			}
		}
	}

	solved = image.NewNRGBA(rect)
	copy(solved.Pix, plain.Pix)
	thick := cfg.Cell / 4
	center := func(p image.Point) image.Point {
		return image.Pt(p.X*cfg.Cell+cfg.Cell/2, p.Y*cfg.Cell+cfg.Cell/2)
	}
	path := m.Solve(cfg.Start, cfg.End)
	for i := 1; i < len(path); i++ {
		a, b := center(path[i-1]), center(path[i])
		seg := image.Rectangle{Min: a, Max: b}.Canon()
		seg.Min = seg.Min.Sub(image.Pt(thick/2, thick/2))
		seg.Max = seg.Max.Add(image.Pt(thick/2, thick/2))
		draw.Draw(solved, seg.Intersect(rect), &image.Uniform{C: pathColor}, image.Point{}, draw.Src)
	}
	return plain, solved
}
