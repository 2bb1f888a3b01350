package state

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thruflo/rover/internal/config"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketMissions = "missions"
	bucketRovers   = "rovers"
	// bucketLogs holds one nested bucket per mission, keyed by sequence.
	bucketLogs = "logs"
)

var initDB = map[string]func(*bolt.Tx) error{
	"initialize mission table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMissions))
		return err
	},
	"initialize rover table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRovers))
		return err
	},
	"initialize log table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLogs))
		return err
	},
}

// BoltStore keeps missions in a single bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// CreateMission stores a new mission.
func (s *BoltStore) CreateMission(m *config.Mission) error {
	if err := validateName(m.Name); err != nil {
		return err
	}
	key := []byte(sanitizeName(m.Name))

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketMissions))
		if b.Get(key) != nil {
			return fmt.Errorf("%w: %s", ErrExists, m.Name)
		}
		return putJSON(b, key, m, "mission")
	})
}

// GetMission loads one mission.
func (s *BoltStore) GetMission(name string) (*config.Mission, error) {
	var m config.Mission
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketMissions)).Get([]byte(sanitizeName(name)))
		if v == nil {
			return notFound(name)
		}
		return unmarshal(v, &m, "mission")
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMissions returns all missions ordered by name.
func (s *BoltStore) ListMissions() ([]*config.Mission, error) {
	missions := []*config.Mission{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMissions)).ForEach(func(k, v []byte) error {
			var m config.Mission
			if err := unmarshal(v, &m, "mission"); err != nil {
				return err
			}
			missions = append(missions, &m)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return missions, nil
}

// UpdateMission applies updateFn to a stored mission inside one transaction.
func (s *BoltStore) UpdateMission(name string, updateFn func(*config.Mission)) error {
	key := []byte(sanitizeName(name))

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketMissions))
		v := b.Get(key)
		if v == nil {
			return notFound(name)
		}

		var m config.Mission
		if err := unmarshal(v, &m, "mission"); err != nil {
			return err
		}
		stored := m.Name
		updateFn(&m)
		m.Name = stored

		return putJSON(b, key, &m, "mission")
	})
}

// SaveRover stores the rover state of a mission.
func (s *BoltStore) SaveRover(name string, st *RoverState) error {
	key := []byte(sanitizeName(name))

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketMissions)).Get(key) == nil {
			return notFound(name)
		}
		return putJSON(tx.Bucket([]byte(bucketRovers)), key, st, "rover state")
	})
}

// LoadRover returns the saved rover state, or nil if there is none.
func (s *BoltStore) LoadRover(name string) (*RoverState, error) {
	var st *RoverState
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketRovers)).Get([]byte(sanitizeName(name)))
		if v == nil {
			return nil
		}
		st = &RoverState{}
		return unmarshal(v, st, "rover state")
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// AppendLog appends an entry to the mission's log bucket.
func (s *BoltStore) AppendLog(name string, entry *LogEntry) error {
	key := []byte(sanitizeName(name))

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketMissions)).Get(key) == nil {
			return notFound(name)
		}

		b, err := tx.Bucket([]byte(bucketLogs)).CreateBucketIfNotExists(key)
		if err != nil {
			return fmt.Errorf("failed to create log bucket: %w", err)
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		entry.Seq = seq

		return putJSON(b, marshalSeq(seq), entry, "log entry")
	})
}

// LoadLog returns the mission's log entries in sequence order.
func (s *BoltStore) LoadLog(name string) ([]LogEntry, error) {
	var entries []LogEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLogs)).Bucket([]byte(sanitizeName(name)))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e LogEntry
			if err := unmarshal(v, &e, "log entry"); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func putJSON(b *bolt.Bucket, key []byte, v interface{}, what string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	return b.Put(key, data)
}

func unmarshal(data []byte, v interface{}, what string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", what, err)
	}
	return nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
