package mission

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/logging"
	"github.com/thruflo/rover/internal/obstacle"
	"github.com/thruflo/rover/internal/rover"
	"github.com/thruflo/rover/internal/state"
)

// Session is an opened mission whose rover can receive commands. Every
// Execute is persisted before it returns.
type Session struct {
	mission   *config.Mission
	store     state.Store
	logger    *logging.Logger
	detector  *obstacle.Recorder
	rover     *rover.Rover
	baseSteps int
	now       func() time.Time
}

// Mission returns the mission record as of the last Execute.
func (s *Session) Mission() *config.Mission {
	return s.mission
}

// Position reports the rover's current position.
func (s *Session) Position() rover.Position {
	return s.rover.Position()
}

// Steps is the total number of steps taken since the mission landed.
func (s *Session) Steps() int {
	return s.baseSteps + s.rover.Steps()
}

// Probes returns the obstacle checks made by the last Execute.
func (s *Session) Probes() []obstacle.Probe {
	return s.detector.Probes()
}

// Execute sends commands to the rover. The resulting position is saved and
// the outcome logged even when the rover stops early; in that case the rover
// error is returned unchanged alongside the stop position.
func (s *Session) Execute(commands string) (rover.Position, error) {
	if s.mission.Status == config.MissionStatusRetired {
		return s.rover.Position(), fmt.Errorf("%w: %s", ErrRetired, s.mission.Name)
	}

	s.detector.Reset()
	from := s.rover.Position()
	to, runErr := s.rover.Execute(commands)
	now := s.now().UTC()

	entry := &state.LogEntry{
		ID:       uuid.NewString(),
		Commands: commands,
		From:     from,
		To:       to,
		Outcome:  outcome(runErr),
		At:       now,
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}

	if err := s.store.SaveRover(s.mission.Name, &state.RoverState{
		Position:  to,
		Steps:     s.Steps(),
		UpdatedAt: now,
	}); err != nil {
		return to, fmt.Errorf("failed to save rover: %w", err)
	}

	if err := s.store.AppendLog(s.mission.Name, entry); err != nil {
		return to, fmt.Errorf("failed to append log: %w", err)
	}

	status := config.MissionStatusActive
	if rover.IsObstacle(runErr) {
		status = config.MissionStatusBlocked
	}
	if status != s.mission.Status {
		if err := s.store.UpdateMission(s.mission.Name, func(m *config.Mission) {
			m.Status = status
		}); err != nil {
			return to, fmt.Errorf("failed to update mission: %w", err)
		}
		s.mission.Status = status
	}

	s.logger.Info("commands executed", "commands", commands, "position", to, "outcome", entry.Outcome, "seq", entry.Seq)
	return to, runErr
}

// Step sends a single command letter.
func (s *Session) Step(command rune) (rover.Position, error) {
	return s.Execute(string(command))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return state.OutcomeOK
	case rover.IsObstacle(err):
		return state.OutcomeObstacle
	default:
		return state.OutcomeUnknownCommand
	}
}
