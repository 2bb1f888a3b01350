package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var execTrace bool

var execCmd = &cobra.Command{
	Use:   "exec <mission> <commands>",
	Short: "Send a command sequence to a mission's rover",
	Long: `Executes a string of F, B, L and R commands (case-insensitive) against the
mission's rover. Execution stops at the first unknown command or obstacle;
the rover keeps the moves made before that point.`,
	Args: cobra.ExactArgs(2),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execTrace, "trace", false, "print every obstacle check")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	session, err := ws.controller.Open(args[0])
	if err != nil {
		return err
	}

	pos, runErr := session.Execute(args[1])
	out := cmd.OutOrStdout()

	if execTrace {
		for _, p := range session.Probes() {
			verdict := "free"
			if p.Blocked {
				verdict = "blocked"
			}
			fmt.Fprintf(out, "probe %s %s\n", p.Coordinates, verdict)
		}
	}

	if runErr != nil {
		fmt.Fprintf(out, "Stopped at %s\n", pos)
		return runErr
	}

	fmt.Fprintf(out, "%s\n", pos)
	return nil
}
