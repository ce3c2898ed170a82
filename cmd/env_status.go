package cmd

import (
	"context"
	"fmt"
	"os"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/status"
	"cartctl/pkg/ui"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var envStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show environment status without launching the dashboard",
	Long:  `Shows session container status, host-wide resource totals, and port usage in a lightweight non-interactive output.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := docker.NewClient()
		if err != nil {
			ui.Warn.Println("Docker client unavailable. Container status will be incomplete.")
			rt = nil
		} else {
			defer func() { _ = rt.Close() }()
		}

		var api docker.API
		if rt != nil {
			api = rt
		}
		st := status.Gather(context.Background(), api, config.Loaded)

		renderSessionTable(st.Session)
		renderHostTable(st.Host)
		renderPortTable(st.Ports)
	},
}

func renderSessionTable(containers []status.ContainerStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Container", "State", "Status", "Image"})

	for _, c := range containers {
		t.AppendRow(table.Row{c.Name, c.State, c.Status, c.Image})
	}

	ui.Info.Println("Session Containers")
	t.Render()
	fmt.Println()
}

func renderHostTable(host status.HostStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Containers", "Images", "Volumes"})
	t.AppendRow(table.Row{host.Containers, host.Images, host.Volumes})

	ui.Info.Println("Host Totals")
	t.Render()
	fmt.Println()
}

func renderPortTable(ports []status.PortStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Service", "Port", "State"})

	for _, p := range ports {
		state := "Available"
		if p.InUse {
			state = "In Use"
		}
		t.AppendRow(table.Row{p.Name, p.Port, state})
	}

	ui.Info.Println("Ports")
	t.Render()
	fmt.Println()
}

func init() {
	envCmd.AddCommand(envStatusCmd)
}
