package rover

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is a point on the plane.
type Coordinates struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns c translated by d.
func (c Coordinates) Add(d Coordinates) Coordinates {
	return Coordinates{X: c.X + d.X, Y: c.Y + d.Y}
}

// Orientation is a compass heading.
type Orientation int

// Orientations in clockwise order.
const (
	North Orientation = iota
	East
	South
	West
)

var orientationLetters = [...]byte{'N', 'E', 'S', 'W'}

// forwardDeltas is indexed by Orientation.
var forwardDeltas = [...]Coordinates{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// ParseOrientation parses a single compass letter, ignoring case.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		letter := s[0]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		for i, l := range orientationLetters {
			if l == letter {
				return Orientation(i), nil
			}
		}
	}
	return North, fmt.Errorf("invalid orientation %q: must be one of N, E, S, W", s)
}

// Valid reports whether o is one of the four compass headings.
func (o Orientation) Valid() bool {
	return o >= North && o <= West
}

func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return string(orientationLetters[o])
}

// Clockwise returns the heading 90 degrees to the right.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % 4
}

// CounterClockwise returns the heading 90 degrees to the left.
func (o Orientation) CounterClockwise() Orientation {
	return (o + 3) % 4
}

// MarshalText implements encoding.TextMarshaler so orientations are stored
// as letters in YAML and JSON.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Position is a location plus heading. Positions are values; every
// transition returns a new one.
type Position struct {
	Coordinates `yaml:",inline"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
}

// NewPosition returns the position (x, y) facing o.
func NewPosition(x, y int, o Orientation) Position {
	return Position{Coordinates: Coordinates{X: x, Y: y}, Orientation: o}
}

// ParsePosition parses "x,y,O". Spaces may be used instead of commas, but
// the two separators cannot be mixed and no field may be empty.
func ParsePosition(s string) (Position, error) {
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
			if fields[i] == "" {
				return Position{}, fmt.Errorf("invalid position %q: empty field", s)
			}
		}
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) != 3 {
		return Position{}, fmt.Errorf("invalid position %q: want x,y,orientation", s)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: bad y: %w", s, err)
	}
	o, err := ParseOrientation(fields[2])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}

	return NewPosition(x, y, o), nil
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, p.Orientation)
}

// TurnRight rotates clockwise in place.
func (p Position) TurnRight() Position {
	return Position{Coordinates: p.Coordinates, Orientation: p.Orientation.Clockwise()}
}

// TurnLeft rotates counter-clockwise in place.
func (p Position) TurnLeft() Position {
	return Position{Coordinates: p.Coordinates, Orientation: p.Orientation.CounterClockwise()}
}

// Forward moves one step along the heading.
func (p Position) Forward() Position {
	return Position{Coordinates: p.Coordinates.Add(forwardDeltas[p.Orientation]), Orientation: p.Orientation}
}

// Backward moves one step against the heading, keeping the heading.
func (p Position) Backward() Position {
	d := forwardDeltas[p.Orientation]
	return Position{Coordinates: p.Coordinates.Add(Coordinates{X: -d.X, Y: -d.Y}), Orientation: p.Orientation}
}
