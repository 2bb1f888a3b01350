// Package state persists missions, the last position of each mission's rover
// and the log of command sequences it received.
//
// Two drivers implement Store: FileStore keeps one directory per mission
// under .rover/missions, BoltStore keeps everything in a single bbolt file.
package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thruflo/rover/internal/config"
)

var (
	// ErrNotFound is returned when a mission does not exist.
	ErrNotFound = errors.New("mission not found")
	// ErrExists is returned when creating a mission whose name is taken.
	ErrExists = errors.New("mission already exists")
)

// Store is implemented by every storage driver.
type Store interface {
	CreateMission(m *config.Mission) error
	GetMission(name string) (*config.Mission, error)
	ListMissions() ([]*config.Mission, error)
	UpdateMission(name string, updateFn func(*config.Mission)) error

	// LoadRover returns nil, nil when no state has been saved yet.
	SaveRover(name string, st *RoverState) error
	LoadRover(name string) (*RoverState, error)

	// AppendLog assigns entry.Seq before storing it.
	AppendLog(name string, entry *LogEntry) error
	LoadLog(name string) ([]LogEntry, error)

	Close() error
}

// Open returns the Store selected by cfg. Relative bolt paths are resolved
// against basePath.
func Open(basePath string, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverFile, "":
		return NewFileStore(basePath), nil
	case config.StorageDriverBolt:
		path := cfg.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(basePath, path)
		}
		return OpenBoltStore(path)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// sanitizeName converts a mission name to a safe directory or key name.
// Replaces "/" with "-" to avoid nested directories.
func sanitizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "/", "-")
}

func validateName(name string) error {
	s := sanitizeName(name)
	if s == "" || s == "." || s == ".." {
		return fmt.Errorf("invalid mission name %q", name)
	}
	return nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}
