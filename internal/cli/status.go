package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/mission"
)

var statusCmd = &cobra.Command{
	Use:   "status [mission]",
	Short: "Show missions and rover positions",
	Long: `Without arguments, lists every mission with its status and rover position.
With a mission name, shows that mission in detail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return showMissionDetails(out, ws.controller, args[0])
	}
	return listMissions(out, ws.controller)
}

func listMissions(out io.Writer, ctrl *mission.Controller) error {
	missions, err := ctrl.Missions()
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	if len(missions) == 0 {
		fmt.Fprintln(out, "No missions. Use 'rover land <name>' to start one.")
		return nil
	}

	nameWidth := len("MISSION")
	for _, m := range missions {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}

	fmt.Fprintf(out, "%-*s  %-8s  %-12s  %s\n", nameWidth, "MISSION", "STATUS", "POSITION", "STEPS")
	fmt.Fprintf(out, "%s  %s  %s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", 8), strings.Repeat("-", 12), strings.Repeat("-", 5))

	for _, m := range missions {
		session, err := ctrl.Open(m.Name)
		if err != nil {
			return fmt.Errorf("failed to open mission %s: %w", m.Name, err)
		}
		fmt.Fprintf(out, "%-*s  %-8s  %-12s  %d\n", nameWidth, m.Name, m.Status, session.Position(), session.Steps())
	}
	return nil
}

func showMissionDetails(out io.Writer, ctrl *mission.Controller, name string) error {
	session, err := ctrl.Open(name)
	if err != nil {
		return err
	}
	m := session.Mission()

	printField(out, "Mission", m.Name)
	printField(out, "ID", m.ID)
	printField(out, "Status", m.Status)
	printField(out, "Grid", describeGrid(m))
	printField(out, "Landed", m.Start.String())
	printField(out, "Position", session.Position().String())
	printField(out, "Steps", fmt.Sprintf("%d", session.Steps()))
	printField(out, "Obstacles", fmt.Sprintf("%d", len(m.Obstacles)))
	printField(out, "Created", m.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	return nil
}

func describeGrid(m *config.Mission) string {
	if m.Grid == nil {
		return "unbounded"
	}
	return m.Grid.String()
}

func printField(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%-10s %s\n", label+":", value)
}
