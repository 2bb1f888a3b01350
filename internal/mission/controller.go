// Package mission drives persisted rovers: it lands missions from the
// project config, restores a mission's rover from storage, runs command
// sequences against it and records every outcome.
package mission

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/logging"
	"github.com/thruflo/rover/internal/obstacle"
	"github.com/thruflo/rover/internal/rover"
	"github.com/thruflo/rover/internal/state"
)

// ErrRetired is returned when commands are sent to a retired mission.
var ErrRetired = errors.New("mission is retired")

// Controller creates and opens missions.
type Controller struct {
	cfg    *config.Config
	store  state.Store
	logger *logging.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// ControllerOptions holds configuration for creating a Controller.
type ControllerOptions struct {
	Config *config.Config
	Store  state.Store
	Logger *logging.Logger
}

// NewController creates a Controller. A nil Config means config.DefaultConfig.
func NewController(opts ControllerOptions) *Controller {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{
		cfg:    cfg,
		store:  opts.Store,
		logger: logger,
		now:    time.Now,
	}
}

// Land creates a new mission. The rover starts at start, or at the configured
// start position when start is nil. Grid and obstacles are copied from the
// config.
func (c *Controller) Land(name string, start *rover.Position) (*config.Mission, error) {
	pos := c.cfg.Start
	if start != nil {
		pos = *start
	}

	grid := c.cfg.RoverGrid()
	if err := (rover.Options{Start: pos, Grid: grid}).Validate(); err != nil {
		return nil, fmt.Errorf("failed to land %s: %w", name, err)
	}
	if grid != nil {
		pos = grid.Wrap(pos)
	}

	obstacles := append([]rover.Coordinates(nil), c.cfg.Obstacles...)
	if obstacle.NewSet(obstacles...).DetectObstacle(pos.Coordinates) {
		return nil, &rover.ObstacleError{Obstacle: pos.Coordinates, Position: pos}
	}

	m := &config.Mission{
		ID:        uuid.NewString(),
		Name:      name,
		Start:     pos,
		Grid:      grid,
		Obstacles: obstacles,
		CreatedAt: c.now().UTC(),
		Status:    config.MissionStatusActive,
	}

	if err := c.store.CreateMission(m); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	if err := c.store.SaveRover(name, &state.RoverState{Position: pos, UpdatedAt: m.CreatedAt}); err != nil {
		return nil, fmt.Errorf("failed to save rover: %w", err)
	}

	c.logger.Info("mission landed", "mission", name, "id", m.ID, "position", pos)
	return m, nil
}

// Open restores a mission's rover from its last saved state.
func (c *Controller) Open(name string) (*Session, error) {
	m, err := c.store.GetMission(name)
	if err != nil {
		return nil, err
	}

	st, err := c.store.LoadRover(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load rover: %w", err)
	}

	pos := m.Start
	steps := 0
	if st != nil {
		pos = st.Position
		steps = st.Steps
	}

	logger := c.logger.With("mission", m.Name)
	detector := obstacle.NewRecorder(obstacle.NewSet(m.Obstacles...), logger)

	opts := rover.Options{
		Start:    pos,
		Detector: detector,
		Grid:     m.Grid,
		Logger:   logger,
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mission %s: %w", m.Name, err)
	}

	return &Session{
		mission:  m,
		store:    c.store,
		logger:   logger,
		detector: detector,
		rover:    rover.New(opts),
		baseSteps: steps,
		now:       c.now,
	}, nil
}

// Retire marks a mission as retired. Retired missions reject commands.
func (c *Controller) Retire(name string) error {
	return c.store.UpdateMission(name, func(m *config.Mission) {
		m.Status = config.MissionStatusRetired
	})
}

// Missions lists all stored missions.
func (c *Controller) Missions() ([]*config.Mission, error) {
	return c.store.ListMissions()
}

// Log returns the command log of a mission.
func (c *Controller) Log(name string) ([]state.LogEntry, error) {
	if _, err := c.store.GetMission(name); err != nil {
		return nil, err
	}
	return c.store.LoadLog(name)
}
