package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

func logAt(logger *Logger, level Level, msg string) {
	switch level {
	case LevelDebug:
		logger.Debug(msg)
	case LevelInfo:
		logger.Info(msg)
	case LevelWarn:
		logger.Warn(msg)
	case LevelError:
		logger.Error(msg)
	}
}

func TestLoggerLevels(t *testing.T) {
	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}

	for _, minLevel := range levels {
		for _, logLevel := range levels {
			name := logLevel.String() + " at " + minLevel.String()
			t.Run(name, func(t *testing.T) {
				logger, buf := newTestLogger(minLevel)
				logAt(logger, logLevel, "test message")

				if logLevel >= minLevel {
					assert.Contains(t, buf.String(), "test message")
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"", LevelWarn, true},
		{"trace", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.With("mission", "alpha").Warn("obstacle ahead")

	assert.Equal(t, "WARN: obstacle ahead | mission=alpha\n", buf.String())
}

func TestLoggerFieldsAreSorted(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.WithFields(map[string]interface{}{
		"zeta":  1,
		"alpha": 2,
		"mid":   3,
	}).Info("sorted")

	assert.Equal(t, "INFO: sorted | alpha=2 mid=3 zeta=1\n", buf.String())
}

func TestLoggerInlineKeyVals(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.Warn("move refused", "error", errors.New("blocked cell"), "step", 3, "dangling")

	output := buf.String()
	assert.Contains(t, output, "WARN: move refused")
	assert.Contains(t, output, `error="blocked cell"`)
	assert.Contains(t, output, "step=3")
	assert.NotContains(t, output, "dangling")
}

func TestLoggerInlineOverridesContext(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.With("step", 1).Info("override", "step", 2)

	assert.Contains(t, buf.String(), "step=2")
	assert.NotContains(t, buf.String(), "step=1")
}

func TestLoggerOriginalUnmodified(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	_ = logger.With("mission", "alpha")
	logger.Info("parent")

	assert.NotContains(t, buf.String(), "mission=alpha")
}

type stringer struct{}

func (stringer) String() string { return "1,2,N" }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"simple string", "hello", "hello"},
		{"empty string", "", `""`},
		{"string with spaces", "hello world", `"hello world"`},
		{"string with newline", "hello\nworld", `"hello\nworld"`},
		{"integer", 42, "42"},
		{"error", errors.New("oops"), `"oops"`},
		{"stringer", stringer{}, "1,2,N"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetLevel(LevelWarn)
		SetOutput(log.New(&bytes.Buffer{}, "", 0))
	})

	Debug("debug message")
	assert.Empty(t, buf.String())

	Warn("warn message")
	assert.Contains(t, buf.String(), "WARN: warn message")

	buf.Reset()
	With("component", "test").Error("error message")
	assert.Contains(t, buf.String(), "component=test")
	assert.Same(t, defaultLogger, Default())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.True(t, strings.HasPrefix(Level(42).String(), "LEVEL("))
}
