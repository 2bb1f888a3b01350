package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/rover/internal/rover"
	"github.com/thruflo/rover/internal/state"
)

// AssertPosition checks that two positions are equal, reporting a diff.
func AssertPosition(t *testing.T, expected, actual rover.Position) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

// AssertAt checks a position against coordinates and an orientation.
func AssertAt(t *testing.T, p rover.Position, x, y int, orientation rover.Orientation) {
	t.Helper()
	AssertPosition(t, rover.NewPosition(x, y, orientation), p)
}

// AssertStoppedBy checks that err is an obstacle error for (x, y).
func AssertStoppedBy(t *testing.T, err error, x, y int) {
	t.Helper()
	require.Error(t, err)

	var obstacleErr *rover.ObstacleError
	require.True(t, errors.As(err, &obstacleErr), "expected obstacle error, got %v", err)
	assert.Equal(t, rover.Coordinates{X: x, Y: y}, obstacleErr.Obstacle)
}

// AssertOutcomes checks the outcome of every log entry in order.
func AssertOutcomes(t *testing.T, entries []state.LogEntry, outcomes ...string) {
	t.Helper()
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Outcome
	}
	assert.Equal(t, outcomes, got)
}
