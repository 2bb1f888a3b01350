package testutil

import (
	"time"

	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/rover"
)

// SampleConfig is a 5x5 wrapping map with obstacles at (2, 2) and (0, 3),
// file storage and error-level logging.
const SampleConfig = `grid:
  width: 5
  height: 5
  wrap: true
start:
  x: 0
  y: 0
  orientation: N
obstacles:
  - x: 2
    y: 2
  - x: 0
    y: 3
storage:
  driver: file
log:
  level: error
`

// SampleObstacles returns the obstacles in SampleConfig.
// Returns a new slice each time to prevent test interference.
func SampleObstacles() []rover.Coordinates {
	return []rover.Coordinates{{X: 2, Y: 2}, {X: 0, Y: 3}}
}

// SampleMission returns an active mission landed at 0,0,N on SampleConfig's map.
func SampleMission(name string) *config.Mission {
	return &config.Mission{
		ID:        "00000000-0000-0000-0000-000000000001",
		Name:      name,
		Start:     rover.NewPosition(0, 0, rover.North),
		Grid:      &rover.Grid{Width: 5, Height: 5},
		Obstacles: SampleObstacles(),
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Status:    config.MissionStatusActive,
	}
}
