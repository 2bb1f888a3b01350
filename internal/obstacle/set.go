// Package obstacle provides rover.ObstacleDetector implementations backed by
// known obstacle positions.
package obstacle

import (
	"sort"
	"sync"

	"github.com/thruflo/rover/internal/rover"
)

// Set is a detector that blocks a fixed collection of cells. It is safe for
// concurrent use.
type Set struct {
	mu    sync.RWMutex
	cells map[rover.Coordinates]struct{}
}

// NewSet returns a Set blocking the given cells.
func NewSet(cells ...rover.Coordinates) *Set {
	s := &Set{cells: make(map[rover.Coordinates]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Add blocks c.
func (s *Set) Add(c rover.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[c] = struct{}{}
}

// Remove unblocks c. Removing a free cell is a no-op.
func (s *Set) Remove(c rover.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cells, c)
}

// Len returns the number of blocked cells.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}

// List returns the blocked cells ordered by Y, then X.
func (s *Set) List() []rover.Coordinates {
	s.mu.RLock()
	list := make([]rover.Coordinates, 0, len(s.cells))
	for c := range s.cells {
		list = append(list, c)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Y != list[j].Y {
			return list[i].Y < list[j].Y
		}
		return list[i].X < list[j].X
	})
	return list
}

// DetectObstacle reports whether c is blocked.
func (s *Set) DetectObstacle(c rover.Coordinates) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cells[c]
	return ok
}
