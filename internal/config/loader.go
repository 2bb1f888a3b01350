package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thruflo/rover/internal/logging"
	"github.com/thruflo/rover/internal/rover"
	"gopkg.in/yaml.v3"
)

// DirName is the per-project directory holding config and missions.
const DirName = ".rover"

// Default values for Config.
const (
	DefaultGridWidth     = 100
	DefaultGridHeight    = 100
	DefaultStorageDriver = StorageDriverFile
	DefaultBoltPath      = DirName + "/missions.db"
	DefaultLogLevel      = "warn"
)

// ErrConfigExists is returned by WriteDefaultConfig when a config file is
// already present and overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  DefaultGridWidth,
			Height: DefaultGridHeight,
			Wrap:   true,
		},
		Start: rover.NewPosition(0, 0, rover.North),
		Storage: StorageConfig{
			Driver: DefaultStorageDriver,
			Path:   DefaultBoltPath,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the config file location under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, DirName, "config.yaml")
}

// LoadConfig reads and parses .rover/config.yaml from the given base path.
// If the file doesn't exist, the defaults are used. Environment overrides are
// applied before validation.
func LoadConfig(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path(basePath))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envOverrides lists the settings that can be overridden from the
// environment. Unset variables leave the file value in place.
type envOverrides struct {
	LogLevel      string `env:"ROVER_LOG_LEVEL"`
	StorageDriver string `env:"ROVER_STORAGE_DRIVER"`
	StoragePath   string `env:"ROVER_STORAGE_PATH"`
}

// ApplyEnv overlays ROVER_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.StorageDriver != "" {
		cfg.Storage.Driver = o.StorageDriver
	}
	if o.StoragePath != "" {
		cfg.Storage.Path = o.StoragePath
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Grid.Width <= 0 {
		return ValidationError{Field: "grid.width", Message: "must be positive"}
	}
	if cfg.Grid.Height <= 0 {
		return ValidationError{Field: "grid.height", Message: "must be positive"}
	}
	if !cfg.Start.Orientation.Valid() {
		return ValidationError{Field: "start.orientation", Message: "must be one of N, E, S, W"}
	}

	start := cfg.Start.Coordinates
	grid := cfg.RoverGrid()
	if grid != nil {
		start = grid.WrapCoordinates(start)
	}
	for i, o := range cfg.Obstacles {
		field := fmt.Sprintf("obstacles[%d]", i)
		if grid != nil && !grid.Contains(o) {
			return ValidationError{Field: field, Message: fmt.Sprintf("%s is outside the %s grid", o, grid)}
		}
		if o == start {
			return ValidationError{Field: field, Message: "blocks the start position"}
		}
	}

	if err := ValidateStorageConfig(&cfg.Storage); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}

	return nil
}

// ValidateStorageConfig checks that storage config values are valid.
func ValidateStorageConfig(cfg *StorageConfig) error {
	switch cfg.Driver {
	case StorageDriverFile:
	case StorageDriverBolt:
		if cfg.Path == "" {
			return ValidationError{Field: "storage.path", Message: "required for the bolt driver"}
		}
	default:
		return ValidationError{Field: "storage.driver", Message: fmt.Sprintf("unknown driver %q", cfg.Driver)}
	}
	return nil
}

// WriteDefaultConfig writes the default config to .rover/config.yaml. An
// existing file is only replaced when force is set.
func WriteDefaultConfig(basePath string, force bool) error {
	path := Path(basePath)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrConfigExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
