package tui

import (
	"strings"

	"github.com/thruflo/rover/internal/config"
)

// Box drawing characters (Unicode)
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// BoxWithContent draws a box around content with a title in the top border.
// Every line is padded or truncated to the widest line.
func BoxWithContent(title string, content []string) []string {
	inner := visibleWidth(title) + 2
	for _, line := range content {
		if n := visibleWidth(line); n > inner {
			inner = n
		}
	}

	lines := make([]string, 0, len(content)+2)

	top := BoxHorizontal + " " + title + " "
	if title == "" {
		top = ""
	}
	lines = append(lines, BoxTopLeft+top+strings.Repeat(BoxHorizontal, inner+2-visibleWidth(top))+BoxTopRight)

	for _, line := range content {
		lines = append(lines, BoxVertical+" "+line+strings.Repeat(" ", inner-visibleWidth(line))+" "+BoxVertical)
	}

	lines = append(lines, BoxBottomLeft+strings.Repeat(BoxHorizontal, inner+2)+BoxBottomRight)
	return lines
}

// visibleWidth is the rune count of s ignoring ANSI escape sequences.
func visibleWidth(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// ANSI text attributes and colors.
const (
	Reset         = "\033[0m"
	Bold          = "\033[1m"
	FgRed         = "\033[31m"
	FgGreen       = "\033[32m"
	FgYellow      = "\033[33m"
	FgBrightBlack = "\033[90m"
)

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// StatusColor returns the color code for a mission status.
func StatusColor(status string) string {
	switch status {
	case config.MissionStatusActive:
		return FgGreen
	case config.MissionStatusBlocked:
		return FgRed
	case config.MissionStatusRetired:
		return FgBrightBlack
	default:
		return ""
	}
}

// FormatStatus formats a mission status with its color.
func FormatStatus(status string) string {
	color := StatusColor(status)
	if color == "" {
		return status
	}
	return Style(status, color, Bold)
}
