// Package board starts the interactive Kanban board.
package board

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/app"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/config"
	"github.com/thenoetrevino/applyboard/internal/logging"
	"github.com/thenoetrevino/applyboard/internal/tui"
	"github.com/thenoetrevino/applyboard/internal/tui/theme"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the Kanban board in the terminal. Move cards between stages with
m (pick up), h/l (choose column) and enter (drop).

Logs are written to ~/.applyboard/logs/applyboard.log unless log_path is set.`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout belongs to the board from here on
	if err := logging.Init(cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	theme.Init(cfg.ColorScheme)

	notifier, toasts := tui.ToastChannel(32)
	c, err := cli.NewCLI(ctx, app.WithNotifier(notifier))
	if err != nil {
		slog.Error("board startup failed", "error", err)
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if _, ok := c.App.Session.CurrentUser(); !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: not signed in. Run 'applyboard login --user <id>' first.")
		return cli.Exitf(cli.ExitNotFound, "not signed in")
	}

	p := tea.NewProgram(tui.InitialModel(ctx, c.App, cfg, toasts))
	if _, err := p.Run(); err != nil {
		slog.Error("board exited with error", "error", err)
		return err
	}
	return nil
}
