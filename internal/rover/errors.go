package rover

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrObstacle       = errors.New("obstacle detected")
)

// UnknownCommandError is returned by Execute when the input contains a
// character that is not a command. Commands holds the whole input.
type UnknownCommandError struct {
	Command  rune
	Index    int
	Commands string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q at %d in %q", e.Command, e.Index, e.Commands)
}

func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}

// ObstacleError is returned when a move would enter a blocked cell. The rover
// stays at Position.
type ObstacleError struct {
	Obstacle Coordinates
	Position Position
}

func (e *ObstacleError) Error() string {
	return fmt.Sprintf("obstacle detected at %s, rover stopped at %s", e.Obstacle, e.Position)
}

func (e *ObstacleError) Is(target error) bool {
	return target == ErrObstacle
}

// IsUnknownCommand checks if an error is an UnknownCommandError.
func IsUnknownCommand(err error) bool {
	var uc *UnknownCommandError
	return errors.As(err, &uc)
}

// IsObstacle checks if an error is an ObstacleError.
func IsObstacle(err error) bool {
	var oe *ObstacleError
	return errors.As(err, &oe)
}
