package obstacle

import (
	"sync"

	"github.com/thruflo/rover/internal/logging"
	"github.com/thruflo/rover/internal/rover"
)

// Probe is one question asked of a detector and its answer.
type Probe struct {
	Coordinates rover.Coordinates
	Blocked     bool
}

// Recorder wraps a detector and remembers every probe made through it.
type Recorder struct {
	next   rover.ObstacleDetector
	logger *logging.Logger

	mu     sync.Mutex
	probes []Probe
}

// NewRecorder wraps next. A nil logger disables probe logging.
func NewRecorder(next rover.ObstacleDetector, logger *logging.Logger) *Recorder {
	if next == nil {
		next = rover.NoObstacles{}
	}
	return &Recorder{next: next, logger: logger}
}

// DetectObstacle forwards to the wrapped detector and records the result.
func (r *Recorder) DetectObstacle(c rover.Coordinates) bool {
	blocked := r.next.DetectObstacle(c)

	r.mu.Lock()
	r.probes = append(r.probes, Probe{Coordinates: c, Blocked: blocked})
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("obstacle probe", "x", c.X, "y", c.Y, "blocked", blocked)
	}
	return blocked
}

// Probes returns a copy of the recorded probes in order.
func (r *Recorder) Probes() []Probe {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Probe, len(r.probes))
	copy(out, r.probes)
	return out
}

// Reset forgets all recorded probes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes = nil
}
