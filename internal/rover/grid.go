package rover

import "fmt"

// Grid is a toroidal map: leaving one edge re-enters from the opposite one.
type Grid struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// NewGrid returns a width x height grid. Both dimensions must be positive.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("invalid grid %dx%d: dimensions must be positive", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Contains reports whether c lies inside the grid without wrapping.
func (g Grid) Contains(c Coordinates) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// WrapCoordinates reduces c onto the grid.
func (g Grid) WrapCoordinates(c Coordinates) Coordinates {
	return Coordinates{X: floorMod(c.X, g.Width), Y: floorMod(c.Y, g.Height)}
}

// Wrap reduces the coordinates of p onto the grid, keeping the heading.
func (g Grid) Wrap(p Position) Position {
	return Position{Coordinates: g.WrapCoordinates(p.Coordinates), Orientation: p.Orientation}
}

// floorMod is a modulo whose result has the sign of m, so -1 mod 10 is 9.
func floorMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
