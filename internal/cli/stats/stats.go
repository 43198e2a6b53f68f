package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/models"
	pipeline "github.com/thenoetrevino/applyboard/internal/stats"
)

const barWidth = 30

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show application statistics",
		Long: `Summarize your applications: totals, success rate, how many sit in
each stage and how many were added per month.

Examples:
  applyboard stats
  applyboard stats --json
`,
		RunE: handler.Refreshed(runStats),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	companies := c.App.CompanyService.Companies()
	summary := pipeline.Overview(companies)
	stages := pipeline.Stages(companies)
	timeline := pipeline.Timeline(companies, time.Local)

	if out.JSON {
		return out.JSONResult("stats", map[string]interface{}{
			"summary":  summary,
			"stages":   stages,
			"timeline": timeline,
		})
	}
	if out.Quiet {
		fmt.Println(summary.Total)
		return nil
	}

	titles := models.DefaultColumnConfigs()
	if saved, err := c.App.SettingsService.ColumnTitles(ctx); err == nil {
		for status, title := range saved {
			if cfg, ok := titles[status]; ok {
				cfg.Title = title
				titles[status] = cfg
			}
		}
	}

	fmt.Println(styles.TitleStyle.Render("Applications"))
	fmt.Printf("  Total: %d   To apply: %d   In progress: %d   Offers: %d   Rejected: %d\n",
		summary.Total, summary.Pending, summary.Active, summary.Passed, summary.Rejected)
	fmt.Printf("  Success rate: %d%%\n\n", summary.SuccessRate)

	fmt.Println(styles.TitleStyle.Render("By stage"))
	for _, st := range stages {
		fmt.Printf("  %-16s %s %d\n", titles[st.Status].Title, bar(st.Count, summary.Total), st.Count)
	}

	if len(timeline) > 0 {
		fmt.Println()
		fmt.Println(styles.TitleStyle.Render("By month"))
		peak := 0
		for _, m := range timeline {
			if m.Total > peak {
				peak = m.Total
			}
		}
		for _, m := range timeline {
			fmt.Printf("  %s %s %d\n", m.Month, bar(m.Total, peak), m.Total)
		}
	}
	return nil
}

func bar(n, of int) string {
	if of <= 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := n * barWidth / of
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
