package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thruflo/rover/internal/shell"
)

var driveQuiet bool

var driveCmd = &cobra.Command{
	Use:   "drive <mission>",
	Short: "Drive a mission's rover interactively",
	Long: `Starts a command shell for the mission's rover. Available commands:

  position   print the rover position
  go         read a command sequence and execute it
  forward    move one step forward
  backward   move one step backward
  left       turn left
  right      turn right
  help       list commands
  exit       leave the shell

Every move is saved as it happens. Prompts are omitted when stdin is not a
terminal, so the shell can be scripted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDrive,
}

func init() {
	driveCmd.Flags().BoolVarP(&driveQuiet, "quiet", "q", false, "never print prompts")
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	session, err := ws.controller.Open(args[0])
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	sh := shell.New(shell.NewTerminal(in, cmd.OutOrStdout()), shell.Options{
		Quiet: driveQuiet || !isTerminal(in),
	})
	shell.AddRoverCommands(sh, session)

	return sh.Run(cmd.Context())
}

func isTerminal(r interface{}) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
