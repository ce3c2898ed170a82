package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLines_PadsShortInput(t *testing.T) {
	lines := PadLines([]string{"abc"}, 3, 10)

	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestPadLines_TruncatesLongInput(t *testing.T) {
	in := []string{"one", "two", "three", "four"}
	lines := PadLines(in, 2, 5)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
}

func TestPadLines_EmptyInput(t *testing.T) {
	lines := PadLines(nil, 2, 4)

	require.Len(t, lines, 2)
	assert.Equal(t, "    ", lines[0])
	assert.Equal(t, "    ", lines[1])
}

func TestRenderToLines_Width(t *testing.T) {
	lines := RenderToLines("hello world", 20)

	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestBuildTopBorder_Shape(t *testing.T) {
	b := BuildTopBorder(30, 30, "Left", "Right")

	assert.Contains(t, b, "╭─")
	assert.Contains(t, b, "┬─")
	assert.Contains(t, b, "╮")
	assert.Contains(t, b, "Left")
	assert.Contains(t, b, "Right")
}

func TestBuildTopBorder_TightWidths(t *testing.T) {
	// Titles wider than the panels must not panic or repeat negatively.
	b := BuildTopBorder(4, 4, "A very long title", "Another long title")
	assert.NotEmpty(t, b)
}

func TestBuildMiddleBorder_Shape(t *testing.T) {
	b := BuildMiddleBorder(60, 28, "Logs")

	assert.Contains(t, b, "├─")
	assert.Contains(t, b, "┤")
	assert.Contains(t, b, "Logs")
	// The junction marks where the top divider sat.
	assert.Contains(t, b, "┴")
}

func TestBuildMiddleBorder_JunctionOutOfRange(t *testing.T) {
	// Title so wide the junction would land outside the dash run.
	b := BuildMiddleBorder(30, 28, strings.Repeat("x", 25))
	assert.NotEmpty(t, b)
	assert.NotContains(t, b, "┴")
}

func TestBuildBottomBorder_Shape(t *testing.T) {
	b := BuildBottomBorder(50, "[q] quit")

	assert.Contains(t, b, "╰─")
	assert.Contains(t, b, "╯")
	assert.Contains(t, b, "[q] quit")
}

func TestBuildBottomBorder_NarrowTerminal(t *testing.T) {
	b := BuildBottomBorder(5, "[u] env up | [d] env down | [q] quit")
	assert.NotEmpty(t, b)
}
