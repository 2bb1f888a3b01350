package config

import (
	"time"

	"github.com/thruflo/rover/internal/rover"
)

// GridConfig describes the map missions are landed on.
type GridConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Wrap   bool `yaml:"wrap"`
}

// StorageConfig selects where missions are persisted.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	// Path is the bolt database file, relative to the base path unless
	// absolute. Ignored by the file driver.
	Path string `yaml:"path,omitempty"`
}

// LogConfig controls the ambient logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config represents the .rover/config.yaml file.
type Config struct {
	Grid      GridConfig          `yaml:"grid"`
	Start     rover.Position      `yaml:"start"`
	Obstacles []rover.Coordinates `yaml:"obstacles,omitempty"`
	Storage   StorageConfig       `yaml:"storage"`
	Log       LogConfig           `yaml:"log"`
}

// RoverGrid returns the grid to drive on, or nil when wrapping is disabled.
func (c *Config) RoverGrid() *rover.Grid {
	if !c.Grid.Wrap {
		return nil
	}
	return &rover.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

// Mission represents a .rover/missions/<name>/mission.yaml file, or the
// equivalent record in the bolt store. Grid and Obstacles are copied from the
// config when the mission lands so later config edits do not move the map
// under a running mission.
type Mission struct {
	ID        string              `yaml:"id" json:"id"`
	Name      string              `yaml:"name" json:"name"`
	Start     rover.Position      `yaml:"start" json:"start"`
	Grid      *rover.Grid         `yaml:"grid,omitempty" json:"grid,omitempty"`
	Obstacles []rover.Coordinates `yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
	CreatedAt time.Time           `yaml:"created_at" json:"created_at"`
	Status    string              `yaml:"status" json:"status"`
}

// Mission status values.
const (
	MissionStatusActive  = "active"
	MissionStatusBlocked = "blocked"
	MissionStatusRetired = "retired"
)

// Storage drivers.
const (
	StorageDriverFile = "file"
	StorageDriverBolt = "bolt"
)
