package shell

import (
	"fmt"
	"strings"

	"github.com/thruflo/rover/internal/rover"
)

// PromptCommands is printed by the go command before reading a sequence.
const PromptCommands = "> Enter commands:"

// Driver is the part of a mission session the rover commands need.
type Driver interface {
	Position() rover.Position
	Execute(commands string) (rover.Position, error)
}

// AddRoverCommands registers position, go, left, right, forward and backward
// on s, all acting on d.
func AddRoverCommands(s *Shell, d Driver) {
	s.AddCommand("position", PositionCmd{shell: s, driver: d})
	s.AddCommand("go", GoCmd{shell: s, driver: d})

	steps := map[string]rune{
		"left":     rover.CommandLeft,
		"right":    rover.CommandRight,
		"forward":  rover.CommandForward,
		"backward": rover.CommandBackward,
	}
	for name, letter := range steps {
		s.AddCommand(name, StepCmd{shell: s, driver: d, command: letter})
	}
	s.AddCommand("help", CommandFunc(func() error {
		s.console.Print("Commands: " + strings.Join(append(s.Commands(), ExitCommand), ", "))
		return nil
	}))
}

// PositionCmd prints the rover position as [x,y,O].
type PositionCmd struct {
	shell  *Shell
	driver Driver
}

// Execute prints the position.
func (c PositionCmd) Execute() error {
	c.shell.console.Print(formatPosition(c.driver.Position()))
	return nil
}

// GoCmd reads a command sequence and sends it to the rover.
type GoCmd struct {
	shell  *Shell
	driver Driver
}

// Execute prompts for a sequence and runs it.
func (c GoCmd) Execute() error {
	c.shell.Prompt(PromptCommands)
	line, err := c.shell.console.ReadLine()
	if err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return run(c.shell, c.driver, strings.TrimSpace(line))
}

// StepCmd sends one fixed command letter.
type StepCmd struct {
	shell   *Shell
	driver  Driver
	command rune
}

// Execute runs the step.
func (c StepCmd) Execute() error {
	return run(c.shell, c.driver, string(c.command))
}

// run prints the position reached even when the rover stopped early.
func run(s *Shell, d Driver, commands string) error {
	pos, err := d.Execute(commands)
	s.console.Print(formatPosition(pos))
	return err
}

func formatPosition(p rover.Position) string {
	return "[" + p.String() + "]"
}
