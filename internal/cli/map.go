package cli

import (
	"github.com/spf13/cobra"
	"github.com/thruflo/rover/internal/tui"
)

var (
	mapWidth  int
	mapHeight int
	mapColor  bool
)

var mapCmd = &cobra.Command{
	Use:   "map <mission>",
	Short: "Draw the mission map around the rover",
	Long: `Draws the mission's grid with the rover (^ > v <) and obstacles (#).
Large grids are cropped to a window that follows the rover. Without --width
and --height the window fills the terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&mapWidth, "width", 0, "window width in cells")
	mapCmd.Flags().IntVar(&mapHeight, "height", 0, "window height in cells")
	mapCmd.Flags().BoolVar(&mapColor, "color", false, "force colored output")
	rootCmd.AddCommand(mapCmd)
}

// Window size used when the output is not a terminal.
const (
	defaultMapWidth  = 40
	defaultMapHeight = 20
)

func runMap(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	session, err := ws.controller.Open(args[0])
	if err != nil {
		return err
	}
	m := session.Mission()

	out := cmd.OutOrStdout()
	width, height := defaultMapWidth, defaultMapHeight
	termWidth, termHeight, isTerm := tui.Size(out)
	if isTerm {
		// Borders take four columns; borders and the footer take three rows.
		width, height = termWidth-4, termHeight-4
	}
	if mapWidth > 0 {
		width = mapWidth
	}
	if mapHeight > 0 {
		height = mapHeight
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	view := tui.MapView{
		Title:     m.Name + " " + tui.FormatStatus(m.Status),
		Grid:      m.Grid,
		Rover:     session.Position(),
		Obstacles: m.Obstacles,
		Color:     mapColor || isTerm,
	}
	if !view.Color {
		view.Title = m.Name + " " + m.Status
	}
	return tui.Print(out, view.Render(width, height))
}
