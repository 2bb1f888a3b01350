package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/rover/internal/config"
)

// SetupTestDir creates a temporary directory containing .rover/config.yaml
// with SampleConfig. The directory is removed when the test completes.
func SetupTestDir(t *testing.T) string {
	t.Helper()
	return SetupTestDirWithConfig(t, SampleConfig)
}

// SetupTestDirWithConfig is SetupTestDir with a custom config.yaml.
func SetupTestDirWithConfig(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	WriteTestFile(t, tmpDir, filepath.Join(config.DirName, "config.yaml"), content)
	return tmpDir
}

// WriteTestFile writes content to path relative to base, creating parent
// directories as needed.
func WriteTestFile(t *testing.T, base, path, content string) {
	t.Helper()

	fullPath := filepath.Join(base, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}

// MustMarshalJSON marshals v to JSON, failing the test on error.
func MustMarshalJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// MustUnmarshalJSON unmarshals data into v, failing the test on error.
func MustUnmarshalJSON(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v))
}
