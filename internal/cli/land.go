package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/rover/internal/rover"
)

var landAt string

var landCmd = &cobra.Command{
	Use:   "land <mission>",
	Short: "Land a rover for a new mission",
	Long: `Creates a mission and lands its rover. The grid and obstacles are copied
from .rover/config.yaml; the start position comes from --at or the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runLand,
}

var retireCmd = &cobra.Command{
	Use:   "retire <mission>",
	Short: "Retire a mission so its rover accepts no more commands",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetire,
}

func init() {
	landCmd.Flags().StringVar(&landAt, "at", "", "start position as x,y,orientation (e.g. 0,0,N)")
	rootCmd.AddCommand(landCmd)
	rootCmd.AddCommand(retireCmd)
}

func runLand(cmd *cobra.Command, args []string) error {
	var start *rover.Position
	if landAt != "" {
		pos, err := rover.ParsePosition(landAt)
		if err != nil {
			return err
		}
		start = &pos
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	m, err := ws.controller.Land(args[0], start)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Landed %s at %s on %s grid (%d obstacles)\n",
		m.Name, m.Start, describeGrid(m), len(m.Obstacles))
	return nil
}

func runRetire(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.controller.Retire(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Retired %s\n", args[0])
	return nil
}
