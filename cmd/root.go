package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli/board"
	"github.com/thenoetrevino/applyboard/internal/cli/calendar"
	"github.com/thenoetrevino/applyboard/internal/cli/column"
	"github.com/thenoetrevino/applyboard/internal/cli/company"
	"github.com/thenoetrevino/applyboard/internal/cli/session"
	"github.com/thenoetrevino/applyboard/internal/cli/settings"
	"github.com/thenoetrevino/applyboard/internal/cli/stats"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "applyboard",
	Short: "Applyboard - track job applications on a Kanban board",
	Long: `Applyboard tracks job applications through six stages, from "To Apply"
to an offer or a rejection. Run 'applyboard board' for the interactive board,
or use the subcommands below from scripts (every command accepts --json).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A broken config file is reported by the command that needs it
		if cfg, err := config.Load(); err == nil {
			styles.Init(cfg.ColorScheme)
		}
	},
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(company.CompanyCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(calendar.CalendarCmd())
	rootCmd.AddCommand(settings.SettingsCmd())
	rootCmd.AddCommand(session.LoginCmd())
	rootCmd.AddCommand(session.LogoutCmd())
	rootCmd.AddCommand(session.WhoamiCmd())
}

// Execute runs the root command. The returned error carries the exit code
// for main; output has already been written.
func Execute() error {
	return rootCmd.Execute()
}
