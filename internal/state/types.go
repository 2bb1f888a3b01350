package state

import (
	"time"

	"github.com/thruflo/rover/internal/rover"
)

// RoverState is the last known state of a mission's rover (rover.json).
type RoverState struct {
	Position  rover.Position `json:"position"`
	Steps     int            `json:"steps"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// LogEntry records one command sequence sent to a rover (log.json).
type LogEntry struct {
	ID       string         `json:"id"`
	Seq      uint64         `json:"seq"`
	Commands string         `json:"commands"`
	From     rover.Position `json:"from"`
	To       rover.Position `json:"to"`
	Outcome  string         `json:"outcome"`
	Error    string         `json:"error,omitempty"`
	At       time.Time      `json:"at"`
}

// Outcome values for LogEntry.Outcome.
const (
	OutcomeOK             = "ok"
	OutcomeObstacle       = "obstacle"
	OutcomeUnknownCommand = "unknown_command"
)
