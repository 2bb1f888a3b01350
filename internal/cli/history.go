package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <mission>",
	Short: "Show the command log of a mission",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show only the last n entries (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	entries, err := ws.controller.Log(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No commands sent to %s yet.\n", args[0])
		return nil
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%4d  %s  %-16s %s -> %s  %s", e.Seq, e.At.Format("2006-01-02 15:04:05"), e.Commands, e.From, e.To, e.Outcome)
		if e.Error != "" {
			fmt.Fprintf(out, " (%s)", e.Error)
		}
		fmt.Fprintln(out)
	}
	return nil
}
