package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/thruflo/rover/internal/config"
	"gopkg.in/yaml.v3"
)

// FileStore handles local mission storage in plain files.
type FileStore struct {
	basePath string

	// mu serialises read-modify-write cycles on log.json.
	mu sync.Mutex
}

// NewFileStore creates a FileStore with the given base path.
// The base path should be the project root; missions are stored in .rover/missions/.
func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

func (s *FileStore) missionsDir() string {
	return filepath.Join(s.basePath, config.DirName, "missions")
}

func (s *FileStore) missionDir(name string) string {
	return filepath.Join(s.missionsDir(), sanitizeName(name))
}

// CreateMission creates a new mission directory and writes mission.yaml.
func (s *FileStore) CreateMission(m *config.Mission) error {
	if err := validateName(m.Name); err != nil {
		return err
	}
	if s.missionExists(m.Name) {
		return fmt.Errorf("%w: %s", ErrExists, m.Name)
	}

	if err := os.MkdirAll(s.missionDir(m.Name), 0o755); err != nil {
		return fmt.Errorf("failed to create mission directory: %w", err)
	}

	return s.writeMission(m)
}

// GetMission reads mission.yaml from the mission directory.
func (s *FileStore) GetMission(name string) (*config.Mission, error) {
	data, err := os.ReadFile(filepath.Join(s.missionDir(name), "mission.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(name)
		}
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	var m config.Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mission file: %w", err)
	}

	return &m, nil
}

// ListMissions enumerates all mission directories, ordered by name.
func (s *FileStore) ListMissions() ([]*config.Mission, error) {
	entries, err := os.ReadDir(s.missionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []*config.Mission{}, nil
		}
		return nil, fmt.Errorf("failed to read missions directory: %w", err)
	}

	missions := []*config.Mission{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, err := s.GetMission(entry.Name())
		if err != nil {
			continue // Skip directories without a readable mission.yaml
		}
		missions = append(missions, m)
	}

	sort.Slice(missions, func(i, j int) bool { return missions[i].Name < missions[j].Name })
	return missions, nil
}

// UpdateMission applies updateFn to mission.yaml.
func (s *FileStore) UpdateMission(name string, updateFn func(*config.Mission)) error {
	m, err := s.GetMission(name)
	if err != nil {
		return err
	}

	stored := m.Name
	updateFn(m)
	m.Name = stored
	return s.writeMission(m)
}

func (s *FileStore) writeMission(m *config.Mission) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal mission: %w", err)
	}

	path := filepath.Join(s.missionDir(m.Name), "mission.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mission file: %w", err)
	}

	return nil
}

func (s *FileStore) missionExists(name string) bool {
	_, err := os.Stat(filepath.Join(s.missionDir(name), "mission.yaml"))
	return err == nil
}

// SaveRover writes rover.json to the mission directory.
func (s *FileStore) SaveRover(name string, st *RoverState) error {
	if !s.missionExists(name) {
		return notFound(name)
	}
	return writeJSON(filepath.Join(s.missionDir(name), "rover.json"), st, "rover state")
}

// LoadRover reads rover.json from the mission directory.
func (s *FileStore) LoadRover(name string) (*RoverState, error) {
	var st RoverState
	found, err := readJSON(filepath.Join(s.missionDir(name), "rover.json"), &st, "rover state")
	if err != nil || !found {
		return nil, err
	}
	return &st, nil
}

// AppendLog adds an entry to log.json.
func (s *FileStore) AppendLog(name string, entry *LogEntry) error {
	if !s.missionExists(name) {
		return notFound(name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.LoadLog(name)
	if err != nil {
		return err
	}

	entry.Seq = 1
	if n := len(entries); n > 0 {
		entry.Seq = entries[n-1].Seq + 1
	}
	entries = append(entries, *entry)

	return writeJSON(filepath.Join(s.missionDir(name), "log.json"), entries, "log")
}

// LoadLog reads log.json from the mission directory.
func (s *FileStore) LoadLog(name string) ([]LogEntry, error) {
	var entries []LogEntry
	if _, err := readJSON(filepath.Join(s.missionDir(name), "log.json"), &entries, "log"); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close is a no-op for the file driver.
func (s *FileStore) Close() error {
	return nil
}

func writeJSON(path string, v interface{}, what string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", what, err)
	}
	return nil
}

// readJSON reports found=false without error when path does not exist.
func readJSON(path string, v interface{}, what string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s file: %w", what, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s file: %w", what, err)
	}
	return true, nil
}
