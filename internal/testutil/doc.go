// Package testutil provides shared test utilities for rover.
//
// # Fixtures
//
// The fixtures.go file provides sample data:
//
//   - SampleConfig - a .rover/config.yaml with a small grid and two obstacles
//   - SampleObstacles() - the obstacles in SampleConfig
//   - SampleMission(name) - a mission record landed on SampleConfig's map
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with .rover/config.yaml
//   - SetupTestDirWithConfig(t, content) - the same with custom config
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//   - MustMarshalJSON(t, v) / MustUnmarshalJSON(t, data, v)
//
// # Assertions
//
// The assertions.go file provides:
//
//   - AssertPosition(t, expected, actual) - compares positions
//   - AssertAt(t, p, x, y, orientation) - checks a position field by field
//   - AssertStoppedBy(t, err, x, y) - checks an obstacle error
//   - AssertOutcomes(t, entries, outcomes...) - checks a command log
package testutil
