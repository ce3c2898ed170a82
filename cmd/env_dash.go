package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"cartctl/pkg/config"
	"cartctl/pkg/dashboard"
	"cartctl/pkg/docker"
	"cartctl/pkg/status"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var envDashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the environment dashboard",
	Long:  `Launches an interactive terminal dashboard showing session container state, host resource totals, port usage, and a live Neo4j log tail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := docker.NewClient()
		if err != nil {
			return fmt.Errorf("create docker client: %w", err)
		}
		defer func() { _ = rt.Close() }()

		m := initialModel(rt, config.Loaded)
		p := tea.NewProgram(m, tea.WithAltScreen())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go collectLogs(ctx, p, rt, config.Loaded)

		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	envCmd.AddCommand(envDashCmd)
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(dashboard.Blue).
			Padding(0, 1).
			Bold(true)

	dashLabelStyle = lipgloss.NewStyle().Foreground(dashboard.Blue).Bold(true)
	dashValueStyle = lipgloss.NewStyle().Foreground(dashboard.Cyan)
	dashGrayStyle  = lipgloss.NewStyle().Foreground(dashboard.Gray)
)

type TickMsg time.Time
type LogMsg string
type StatsMsg status.EnvironmentStatus

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// collectLogs follows the Neo4j container log and forwards each line to
// the program. It retries while the container does not exist yet so the
// dashboard can be left open across env up/down cycles.
func collectLogs(ctx context.Context, p *tea.Program, rt docker.API, cfg *config.Config) {
	lines := make(chan string, 64)

	go func() {
		for line := range lines {
			p.Send(LogMsg("[neo4j] " + line))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			close(lines)
			return
		default:
		}

		id := findSessionContainer(ctx, rt, cfg.GetNeo4jContainer())
		if id == "" {
			time.Sleep(2 * time.Second)
			continue
		}

		// Blocks until the stream ends (container stopped or removed).
		_ = rt.StreamLogs(ctx, id, 20, lines)
		time.Sleep(2 * time.Second)
	}
}

func findSessionContainer(ctx context.Context, rt docker.API, name string) string {
	containers, err := rt.ListContainers(ctx, true)
	if err != nil {
		return ""
	}
	for _, c := range containers {
		if c.Name == name {
			return c.ID
		}
	}
	return ""
}

type model struct {
	rt        docker.API
	cfg       *config.Config
	width     int
	height    int
	startTime time.Time
	stats     status.EnvironmentStatus
	logs      []string
}

func initialModel(rt docker.API, cfg *config.Config) model {
	return model{
		rt:        rt,
		cfg:       cfg,
		startTime: time.Now(),
		stats: status.EnvironmentStatus{
			Session: []status.ContainerStat{
				{Name: cfg.GetNeo4jContainer(), State: "Checking...", Status: "-", Image: "-"},
				{Name: cfg.GetScannerContainer(), State: "Checking...", Status: "-", Image: "-"},
			},
		},
	}
}

func (m model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return StatsMsg(status.Gather(ctx, m.rt, m.cfg))
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.fetchCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "u":
			c := exec.Command("cartctl", "env", "up") // #nosec G204 -- fixed argv
			return m, tea.ExecProcess(c, func(err error) tea.Msg {
				if err != nil {
					return LogMsg("[cartctl] Error running env up: " + err.Error())
				}
				return LogMsg("[cartctl] Env UP completed.")
			})
		case "d":
			c := exec.Command("cartctl", "env", "down") // #nosec G204 -- fixed argv
			return m, tea.ExecProcess(c, func(err error) tea.Msg {
				if err != nil {
					return LogMsg("[cartctl] Error running env down: " + err.Error())
				}
				return LogMsg("[cartctl] Env DOWN completed.")
			})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		return m, tea.Batch(tickCmd(), m.fetchCmd())

	case StatsMsg:
		m.stats = status.EnvironmentStatus(msg)

	case LogMsg:
		m.logs = append(m.logs, dashboard.ColorizeLogLine(string(msg)))
		// Keep only the last 100 log lines to avoid unbounded memory growth
		if len(m.logs) > 100 {
			m.logs = m.logs[len(m.logs)-100:]
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	// ── Header bar ──
	uptime := time.Since(m.startTime).Round(time.Second)
	headerTitle := fmt.Sprintf(" cartctl dashboard | Uptime: %v ", uptime)
	padLen := m.width - lipgloss.Width(headerTitle)
	if padLen < 0 {
		padLen = 0
	}
	header := headerStyle.Width(m.width).Render(headerTitle + strings.Repeat(" ", padLen))
	headerH := lipgloss.Height(header)

	// Frame uses shared borders for a masonry look:
	//   ╭─ Left ────┬─ Right ───╮
	//   │           │           │
	//   ├─ Logs ─┴──────────────┤
	//   │                       │
	//   ╰─ keybindings ─────────╯
	leftInner := (m.width - 3) / 2
	rightInner := m.width - 3 - leftInner
	logInner := m.width - 2

	if leftInner < 1 {
		leftInner = 1
	}
	if rightInner < 1 {
		rightInner = 1
	}
	if logInner < 1 {
		logInner = 1
	}

	available := m.height - headerH
	topRows := (available * 2) / 5
	if topRows < 5 {
		topRows = 5
	}
	botRows := dashboard.LogViewportRows(m.height)

	leftLines := dashboard.PadLines(dashboard.RenderToLines(m.renderLeftContent(), leftInner), topRows, leftInner)
	rightLines := dashboard.PadLines(dashboard.RenderToLines(m.renderRightContent(), rightInner), topRows, rightInner)

	startIdx := len(m.logs) - botRows
	if startIdx < 0 {
		startIdx = 0
	}
	logLines := dashboard.PadLines(dashboard.RenderToLines(strings.Join(m.logs[startIdx:], "\n"), logInner), botRows, logInner)

	var out strings.Builder
	out.WriteString(header)
	out.WriteByte('\n')

	out.WriteString(dashboard.BuildTopBorder(leftInner, rightInner, "Session Containers", "Host Resources"))
	out.WriteByte('\n')

	for i := 0; i < topRows; i++ {
		out.WriteString(dashboard.BorderStr("│") + leftLines[i] + dashboard.BorderStr("│") + rightLines[i] + dashboard.BorderStr("│"))
		out.WriteByte('\n')
	}

	out.WriteString(dashboard.BuildMiddleBorder(m.width, leftInner, "Neo4j Log"))
	out.WriteByte('\n')

	for i := 0; i < botRows; i++ {
		out.WriteString(dashboard.BorderStr("│") + logLines[i] + dashboard.BorderStr("│"))
		out.WriteByte('\n')
	}

	out.WriteString(dashboard.BuildBottomBorder(m.width, "[u] env up | [d] env down | [q] quit"))

	return out.String()
}

func (m model) renderLeftContent() string {
	var b bytes.Buffer
	b.WriteString("\n")
	for _, c := range m.stats.Session {
		b.WriteString(fmt.Sprintf(" %s\n", c.Name))
		b.WriteString(fmt.Sprintf("   State: %-20s %s\n", dashboard.RenderState(c.State), c.Status))
		b.WriteString(fmt.Sprintf("   Image: %s\n\n", dashGrayStyle.Render(c.Image)))
	}

	b.WriteString("Endpoints\n\n")
	b.WriteString(dashLabelStyle.Render(" Browser: ") + fmt.Sprintf(" http://localhost:%d\n", m.cfg.GetHTTPPort()))
	b.WriteString(dashLabelStyle.Render(" Bolt:    ") + fmt.Sprintf(" bolt://localhost:%d\n", m.cfg.GetBoltPort()))
	return b.String()
}

func (m model) renderRightContent() string {
	var b bytes.Buffer
	b.WriteString("\n")
	b.WriteString(dashLabelStyle.Render(" Containers: ") + dashValueStyle.Render(fmt.Sprint(m.stats.Host.Containers)) + "\n")
	b.WriteString(dashLabelStyle.Render(" Images:     ") + dashValueStyle.Render(fmt.Sprint(m.stats.Host.Images)) + "\n")
	b.WriteString(dashLabelStyle.Render(" Volumes:    ") + dashValueStyle.Render(fmt.Sprint(m.stats.Host.Volumes)) + "\n\n")

	b.WriteString("Ports\n\n")
	for _, p := range m.stats.Ports {
		state := dashGrayStyle.Render("available")
		if p.InUse {
			state = dashValueStyle.Render("in use")
		}
		b.WriteString(fmt.Sprintf("  %-14s %-6d %s\n", p.Name, p.Port, state))
	}
	return b.String()
}
