package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/rover/internal/config"
)

func TestBoxWithContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		content []string
		want    []string
	}{
		{
			name:    "no title",
			content: []string{"ab", "c"},
			want: []string{
				"┌────┐",
				"│ ab │",
				"│ c  │",
				"└────┘",
			},
		},
		{
			name:    "title wider than content",
			title:   "alpha",
			content: []string{"..."},
			want: []string{
				"┌─ alpha ─┐",
				"│ ...     │",
				"└─────────┘",
			},
		},
		{
			name:    "escape codes do not count",
			content: []string{Style("x", FgRed), "yyyy"},
			want: []string{
				"┌──────┐",
				"│ " + Style("x", FgRed) + "    │",
				"│ yyyy │",
				"└──────┘",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BoxWithContent(tt.title, tt.content))
		})
	}
}

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FgGreen+Bold+"active"+Reset, FormatStatus(config.MissionStatusActive))
	assert.Equal(t, FgRed+Bold+"blocked"+Reset, FormatStatus(config.MissionStatusBlocked))
	assert.Equal(t, FgBrightBlack+Bold+"retired"+Reset, FormatStatus(config.MissionStatusRetired))
	assert.Equal(t, "unknown", FormatStatus("unknown"))
}

func TestStyle_NoCodes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "plain", Style("plain"))
}

func TestTerminalHelpers_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, _, ok := Size(&buf)
	assert.False(t, ok)
	assert.False(t, IsTerminal(&buf))

	require.NoError(t, Print(&buf, []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", buf.String())
}
