package rover

import (
	"fmt"
	"unicode"

	"github.com/thruflo/rover/internal/logging"
)

// Command letters understood by Execute, in upper case.
const (
	CommandForward  = 'F'
	CommandBackward = 'B'
	CommandLeft     = 'L'
	CommandRight    = 'R'
)

// Options configures a new Rover.
type Options struct {
	// Start is the landing position. It is wrapped onto Grid when one is set.
	Start Position

	// Detector is asked about every cell before the rover enters it.
	// Nil means NoObstacles.
	Detector ObstacleDetector

	// Grid bounds the map. Nil means an unbounded plane.
	Grid *Grid

	// Logger receives one debug entry per step. Nil means logging.Default().
	Logger *logging.Logger
}

// Rover is a single rover. It is not safe for concurrent use.
type Rover struct {
	position Position
	detector ObstacleDetector
	grid     *Grid
	logger   *logging.Logger
	steps    int
}

// Validate checks that the start orientation is a compass heading and that
// the grid, when set, has positive dimensions.
func (o Options) Validate() error {
	if !o.Start.Orientation.Valid() {
		return fmt.Errorf("invalid start %s: unknown orientation", o.Start)
	}
	if o.Grid != nil {
		if _, err := NewGrid(o.Grid.Width, o.Grid.Height); err != nil {
			return err
		}
	}
	return nil
}

// New lands a rover at opts.Start. It panics if opts does not pass Validate;
// callers holding options from files or user input must validate first.
func New(opts Options) *Rover {
	if err := opts.Validate(); err != nil {
		panic("rover: " + err.Error())
	}
	r := &Rover{
		position: opts.Start,
		detector: opts.Detector,
		logger:   opts.Logger,
	}
	if r.detector == nil {
		r.detector = NoObstacles{}
	}
	if r.logger == nil {
		r.logger = logging.Default()
	}
	if opts.Grid != nil {
		g := *opts.Grid
		r.grid = &g
		r.position = g.Wrap(r.position)
	}
	return r
}

// Position reports where the rover is and which way it faces.
func (r *Rover) Position() Position {
	return r.position
}

// Grid returns the grid the rover drives on, or nil.
func (r *Rover) Grid() *Grid {
	return r.grid
}

// Steps counts the commands applied successfully since landing.
func (r *Rover) Steps() int {
	return r.steps
}

// TurnLeft rotates the rover counter-clockwise.
func (r *Rover) TurnLeft() {
	r.apply(CommandLeft, r.position.TurnLeft())
}

// TurnRight rotates the rover clockwise.
func (r *Rover) TurnRight() {
	r.apply(CommandRight, r.position.TurnRight())
}

// MoveForward advances one cell. It returns an *ObstacleError and leaves the
// rover in place if the target cell is blocked.
func (r *Rover) MoveForward() error {
	return r.move(CommandForward, r.position.Forward())
}

// MoveBackward retreats one cell, keeping the heading. Obstacles are handled
// as in MoveForward.
func (r *Rover) MoveBackward() error {
	return r.move(CommandBackward, r.position.Backward())
}

// Execute applies commands left to right and returns the final position.
// It stops at the first unknown command or blocked move; the returned
// position is then where the rover stopped and the error is an
// *UnknownCommandError or *ObstacleError.
func (r *Rover) Execute(commands string) (Position, error) {
	for i, c := range commands {
		if err := r.step(c); err != nil {
			if err == ErrUnknownCommand {
				err = &UnknownCommandError{Command: c, Index: i, Commands: commands}
			}
			r.logger.Warn("command sequence aborted",
				"commands", commands, "index", i, "position", r.position, "error", err)
			return r.position, err
		}
	}
	return r.position, nil
}

// step applies a single command letter.
func (r *Rover) step(c rune) error {
	switch unicode.ToUpper(c) {
	case CommandForward:
		return r.MoveForward()
	case CommandBackward:
		return r.MoveBackward()
	case CommandLeft:
		r.TurnLeft()
	case CommandRight:
		r.TurnRight()
	default:
		return ErrUnknownCommand
	}
	return nil
}

func (r *Rover) move(command rune, target Position) error {
	if r.grid != nil {
		target = r.grid.Wrap(target)
	}
	if r.detector.DetectObstacle(target.Coordinates) {
		return &ObstacleError{Obstacle: target.Coordinates, Position: r.position}
	}
	r.apply(command, target)
	return nil
}

func (r *Rover) apply(command rune, next Position) {
	r.logger.Debug("step", "command", string(command), "from", r.position, "to", next)
	r.position = next
	r.steps++
}
