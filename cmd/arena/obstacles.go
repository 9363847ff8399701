package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/haptic-arena/internal/config"
)

var obstaclesCmd = &cobra.Command{
	Use:   "obstacles",
	Short: "Show the configured obstacles",
	Long: `Prints the obstacles from the active config in collision order.
When obstacles overlap, the first one listed decides the vibration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), obstacleTable(cfg.Obstacles).View())
		return nil
	},
}

// obstacleTable lays the obstacles out as a static table.
func obstacleTable(obstacles []config.ObstacleConfig) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Kind", Width: 12},
		{Title: "Rect (x,y w×h)", Width: 22},
		{Title: "Color", Width: 10},
		{Title: "Intensity", Width: 9},
		{Title: "Bouncy", Width: 6},
	}

	rows := make([]table.Row, len(obstacles))
	for i, o := range obstacles {
		bouncy := "no"
		if o.Bouncy {
			bouncy = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i),
			o.Kind,
			fmt.Sprintf("%g,%g %g×%g", o.X, o.Y, o.Width, o.Height),
			o.Color,
			fmt.Sprintf("%.2f", o.Intensity),
			bouncy,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border take two lines
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell // Nothing is focused in a printed table
	t.SetStyles(s)

	return t
}
