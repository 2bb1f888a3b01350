// Package shell implements a small line-oriented command loop. Each input
// line names a command; names are case-insensitive and "exit" ends the loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Prompts and messages written to the console.
const (
	PromptCommand = "> Enter a command:"
	ExitCommand   = "exit"
)

// Console is the shell's only view of the outside world.
type Console interface {
	Print(line string)
	ReadLine() (string, error)
}

// Command is an action bound to a name.
type Command interface {
	Execute() error
}

// CommandFunc adapts a function to Command.
type CommandFunc func() error

// Execute calls f.
func (f CommandFunc) Execute() error {
	return f()
}

// Terminal is a Console over a reader and a writer.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminal returns a Terminal reading lines from in and printing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{scanner: bufio.NewScanner(in), out: out}
}

// Print writes line followed by a newline.
func (t *Terminal) Print(line string) {
	fmt.Fprintln(t.out, line)
}

// ReadLine returns the next input line without its terminator, or io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Options configures a Shell.
type Options struct {
	// Quiet suppresses prompts, for scripted (non-terminal) input.
	Quiet bool
}

// Shell dispatches input lines to registered commands.
type Shell struct {
	console  Console
	opts     Options
	commands map[string]Command
}

// New returns a Shell with no commands registered.
func New(console Console, opts Options) *Shell {
	return &Shell{
		console:  console,
		opts:     opts,
		commands: make(map[string]Command),
	}
}

// AddCommand binds cmd to name. A later binding for the same name wins.
func (s *Shell) AddCommand(name string, cmd Command) {
	s.commands[strings.ToLower(name)] = cmd
}

// Commands returns the registered names in sorted order.
func (s *Shell) Commands() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prompt prints msg unless the shell is quiet.
func (s *Shell) Prompt(msg string) {
	if !s.opts.Quiet {
		s.console.Print(msg)
	}
}

// Run reads and dispatches lines until "exit", end of input or ctx is done.
// Command errors are printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Prompt(PromptCommand)

		line, err := s.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" {
			continue
		}
		if name == ExitCommand {
			return nil
		}

		cmd, ok := s.commands[name]
		if !ok {
			s.console.Print("Unknown command: " + name)
			continue
		}

		if err := cmd.Execute(); err != nil {
			s.console.Print("Error: " + err.Error())
		}
	}
}
