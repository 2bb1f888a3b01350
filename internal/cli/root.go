package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/logging"
	"github.com/thruflo/rover/internal/mission"
	"github.com/thruflo/rover/internal/state"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	baseDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rover",
	Short: "Drive Mars rovers from the command line",
	Long: `Rover lands simulated rovers on a wrap-around grid and drives them with
command strings of F (forward), B (backward), L (left) and R (right).

Missions are stored under .rover/ in the working directory, so a rover
resumes from where its last command sequence left it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("rover version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "C", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// workspace is everything a mission command needs, built from the project
// directory and its config.
type workspace struct {
	basePath   string
	cfg        *config.Config
	store      state.Store
	controller *mission.Controller
	logger     *logging.Logger
}

func resolveBaseDir() (string, error) {
	if baseDir != "" {
		return baseDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// openWorkspace loads config, applies the log level and opens the store.
// Callers must Close the workspace.
func openWorkspace() (*workspace, error) {
	basePath, err := resolveBaseDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	levelName := cfg.Log.Level
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logging.SetLevel(level)

	store, err := state.Open(basePath, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	logger := logging.With("driver", cfg.Storage.Driver)
	return &workspace{
		basePath: basePath,
		cfg:      cfg,
		store:    store,
		logger:   logger,
		controller: mission.NewController(mission.ControllerOptions{
			Config: cfg,
			Store:  store,
			Logger: logger,
		}),
	}, nil
}

func (w *workspace) Close() error {
	return w.store.Close()
}
