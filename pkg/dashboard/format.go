// Package dashboard provides pure data-transformation and formatting
// utilities used by the cartctl TUI dashboard. These functions are kept
// free of TUI event handling so they can be unit tested directly.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Colours used by the dashboard.
var (
	Cyan   = lipgloss.Color("#00FFFF")
	Blue   = lipgloss.Color("#00A8CC")
	Green  = lipgloss.Color("#00CC66")
	Yellow = lipgloss.Color("#FFAA00")
	Red    = lipgloss.Color("#FF4444")
	Gray   = lipgloss.Color("#666666")
)

// FormatAge converts a duration into a short human-readable string.
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// RenderState returns a styled container state string: green for running,
// red for exited/dead, yellow otherwise (created, paused, restarting).
func RenderState(s string) string {
	switch s {
	case "running":
		return lipgloss.NewStyle().Foreground(Green).Render(s)
	case "exited", "dead", "Stopped":
		return lipgloss.NewStyle().Foreground(Red).Render(s)
	default:
		return lipgloss.NewStyle().Foreground(Yellow).Render(s)
	}
}

// FormatBytes renders a byte count the way the Docker CLI does (1.2GB).
func FormatBytes(n uint64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(n)/float64(div), "kMGTPE"[exp])
}

// ColorizeLogLine applies colour to log line source prefixes.
func ColorizeLogLine(line string) string {
	if strings.HasPrefix(line, "[neo4j]") {
		return lipgloss.NewStyle().Foreground(Cyan).Render("[neo4j]") + line[7:]
	}
	if strings.HasPrefix(line, "[scanner]") {
		return lipgloss.NewStyle().Foreground(Yellow).Render("[scanner]") + line[9:]
	}
	if strings.HasPrefix(line, "[cartctl]") {
		return lipgloss.NewStyle().Foreground(Green).Render("[cartctl]") + line[9:]
	}
	return line
}

// LogViewportRows returns the number of log lines visible in the log
// panel for the current terminal height.
func LogViewportRows(height int) int {
	headerH := 1
	available := height - headerH
	topRows := (available * 2) / 5
	if topRows < 5 {
		topRows = 5
	}
	botRows := available - topRows - 3 // 3 = top/mid/bottom borders
	if botRows < 3 {
		botRows = 3
	}
	return botRows
}
