package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/rover/internal/config"
	"github.com/thruflo/rover/internal/rover"
	"github.com/thruflo/rover/internal/state"
)

func TestSetupTestDir(t *testing.T) {
	t.Parallel()

	dir := SetupTestDir(t)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Grid.Width)
	assert.Equal(t, SampleObstacles(), cfg.Obstacles)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestSampleObstacles_FreshSlice(t *testing.T) {
	t.Parallel()

	obstacles := SampleObstacles()
	obstacles[0].X = 99
	assert.Equal(t, 2, SampleObstacles()[0].X)
}

func TestSampleMission(t *testing.T) {
	t.Parallel()

	m := SampleMission("alpha")
	assert.Equal(t, "alpha", m.Name)
	assert.Equal(t, config.MissionStatusActive, m.Status)
	AssertAt(t, m.Start, 0, 0, rover.North)
}

func TestWriteTestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	WriteTestFile(t, dir, filepath.Join("a", "b", "c.txt"), "hello")

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestMustJSON(t *testing.T) {
	t.Parallel()

	data := MustMarshalJSON(t, rover.NewPosition(1, 2, rover.East))

	var p rover.Position
	MustUnmarshalJSON(t, data, &p)
	AssertAt(t, p, 1, 2, rover.East)
}

func TestAssertStoppedBy(t *testing.T) {
	t.Parallel()

	err := &rover.ObstacleError{Obstacle: rover.Coordinates{X: 3, Y: 4}, Position: rover.NewPosition(3, 3, rover.North)}
	AssertStoppedBy(t, err, 3, 4)
}

func TestAssertOutcomes(t *testing.T) {
	t.Parallel()

	AssertOutcomes(t, []state.LogEntry{
		{Outcome: state.OutcomeOK},
		{Outcome: state.OutcomeObstacle},
	}, state.OutcomeOK, state.OutcomeObstacle)
}
