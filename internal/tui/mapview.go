package tui

import (
	"fmt"
	"strings"

	"github.com/thruflo/rover/internal/rover"
)

// Map cell glyphs.
const (
	GlyphEmpty    = '.'
	GlyphObstacle = '#'
)

// roverGlyphs shows the rover pointing the way it faces.
var roverGlyphs = map[rover.Orientation]rune{
	rover.North: '^',
	rover.East:  '>',
	rover.South: 'v',
	rover.West:  '<',
}

// MapView is a snapshot of a mission's map.
type MapView struct {
	Title     string
	Grid      *rover.Grid
	Rover     rover.Position
	Obstacles []rover.Coordinates
	// Color highlights the rover and obstacles with ANSI codes.
	Color bool
}

// Viewport is the visible window onto the map, in cells.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Viewport picks a window of at most maxWidth by maxHeight cells. The whole
// grid is shown when it fits; otherwise the window follows the rover, clamped
// to the grid edges. An unbounded map is always centered on the rover.
func (v MapView) Viewport(maxWidth, maxHeight int) Viewport {
	if v.Grid == nil {
		return Viewport{
			X:      v.Rover.X - maxWidth/2,
			Y:      v.Rover.Y - maxHeight/2,
			Width:  maxWidth,
			Height: maxHeight,
		}
	}
	x, w := window(v.Rover.X, v.Grid.Width, maxWidth)
	y, h := window(v.Rover.Y, v.Grid.Height, maxHeight)
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

func window(center, size, max int) (start, length int) {
	if size <= max {
		return 0, size
	}
	start = center - max/2
	if start < 0 {
		start = 0
	}
	if start > size-max {
		start = size - max
	}
	return start, max
}

// Render draws the map inside a box. North is up, so the first row is the
// highest y in the viewport.
func (v MapView) Render(maxWidth, maxHeight int) []string {
	vp := v.Viewport(maxWidth, maxHeight)

	blocked := make(map[rover.Coordinates]bool, len(v.Obstacles))
	for _, c := range v.Obstacles {
		blocked[c] = true
	}

	rows := make([]string, 0, vp.Height+1)
	for y := vp.Y + vp.Height - 1; y >= vp.Y; y-- {
		var sb strings.Builder
		for x := vp.X; x < vp.X+vp.Width; x++ {
			sb.WriteString(v.cell(rover.Coordinates{X: x, Y: y}, blocked))
		}
		rows = append(rows, sb.String())
	}
	rows = append(rows, fmt.Sprintf("x %d..%d  y %d..%d  rover %s",
		vp.X, vp.X+vp.Width-1, vp.Y, vp.Y+vp.Height-1, v.Rover))

	return BoxWithContent(v.Title, rows)
}

func (v MapView) cell(c rover.Coordinates, blocked map[rover.Coordinates]bool) string {
	switch {
	case c == v.Rover.Coordinates:
		glyph := string(roverGlyphs[v.Rover.Orientation])
		if v.Color {
			return Style(glyph, FgGreen, Bold)
		}
		return glyph
	case blocked[c]:
		if v.Color {
			return Style(string(GlyphObstacle), FgRed)
		}
		return string(GlyphObstacle)
	default:
		return string(GlyphEmpty)
	}
}
