package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/rover/internal/rover"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	roverDir := filepath.Join(tmpDir, DirName)
	require.NoError(t, os.MkdirAll(roverDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(roverDir, "config.yaml"), []byte(content), 0o644))
	return tmpDir
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, &rover.Grid{Width: DefaultGridWidth, Height: DefaultGridHeight}, cfg.RoverGrid())
	assert.Equal(t, rover.NewPosition(0, 0, rover.North), cfg.Start)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `grid:
  width: 10
  height: 8
  wrap: true
start:
  x: 2
  y: 3
  orientation: e
obstacles:
  - {x: 4, y: 4}
  - {x: 0, y: 7}
storage:
  driver: bolt
  path: data/rover.db
log:
  level: debug
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, GridConfig{Width: 10, Height: 8, Wrap: true}, cfg.Grid)
	assert.Equal(t, rover.NewPosition(2, 3, rover.East), cfg.Start)
	assert.Equal(t, []rover.Coordinates{{X: 4, Y: 4}, {X: 0, Y: 7}}, cfg.Obstacles)
	assert.Equal(t, StorageConfig{Driver: StorageDriverBolt, Path: "data/rover.db"}, cfg.Storage)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `grid:
  wrap: false
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.False(t, cfg.Grid.Wrap)
	assert.Nil(t, cfg.RoverGrid())
	assert.Equal(t, DefaultGridWidth, cfg.Grid.Width)
	assert.Equal(t, DefaultStorageDriver, cfg.Storage.Driver)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, "grid: [unclosed\n")

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_InvalidOrientation(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `start:
  x: 0
  y: 0
  orientation: up
`)

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid orientation")
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `grid:
  width: -1
`)

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "grid.width")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ROVER_LOG_LEVEL", "info")
	t.Setenv("ROVER_STORAGE_DRIVER", "bolt")
	t.Setenv("ROVER_STORAGE_PATH", "/tmp/elsewhere.db")

	tmpDir := writeConfig(t, `log:
  level: error
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, StorageDriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.Storage.Path)
}

func TestLoadConfig_EnvOverrideValidated(t *testing.T) {
	t.Setenv("ROVER_STORAGE_DRIVER", "postgres")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "storage.driver")
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{"defaults", func(*Config) {}, "", false},
		{"zero height", func(c *Config) { c.Grid.Height = 0 }, "grid.height", true},
		{"bad orientation", func(c *Config) { c.Start.Orientation = rover.Orientation(9) }, "start.orientation", true},
		{
			"obstacle outside grid",
			func(c *Config) { c.Obstacles = []rover.Coordinates{{X: 100, Y: 0}} },
			"obstacles[0]",
			true,
		},
		{
			"obstacle outside grid without wrap",
			func(c *Config) {
				c.Grid.Wrap = false
				c.Obstacles = []rover.Coordinates{{X: 100, Y: 0}}
			},
			"",
			false,
		},
		{
			"obstacle on start",
			func(c *Config) {
				c.Obstacles = []rover.Coordinates{{X: 1, Y: 1}, {X: 0, Y: 0}}
			},
			"obstacles[1]",
			true,
		},
		{
			"obstacle on wrapped start",
			func(c *Config) {
				c.Start = rover.NewPosition(-1, 0, rover.North)
				c.Obstacles = []rover.Coordinates{{X: 99, Y: 0}}
			},
			"obstacles[0]",
			true,
		},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "s3" }, "storage.driver", true},
		{"bolt without path", func(c *Config) { c.Storage = StorageConfig{Driver: StorageDriverBolt} }, "storage.path", true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(&cfg)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	require.NoError(t, WriteDefaultConfig(tmpDir, false))
	assert.FileExists(t, Path(tmpDir))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	err = WriteDefaultConfig(tmpDir, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, os.WriteFile(Path(tmpDir), []byte("grid: {width: 3}\n"), 0o644))
	require.NoError(t, WriteDefaultConfig(tmpDir, true))

	cfg, err = LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultGridWidth, cfg.Grid.Width)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := ValidationError{Field: "grid.width", Message: "must be positive"}
	assert.Equal(t, "validation error: grid.width: must be positive", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(os.ErrNotExist))
}
