// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
)

// Func runs one command against an initialized CLI
type Func func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *Arguments) error

// Arguments captures positional arguments and the command for flag access
type Arguments struct {
	Args []string
	cmd  *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Arg returns positional argument i, or "" if absent
func (a *Arguments) Arg(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}
	return a.Args[i]
}

// Flags returns a FlagParser reporting errors through out
func (a *Arguments) Flags(out *cli.OutputFormatter) *FlagParser {
	return NewFlagParser(a.cmd, out)
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := cli.FormatterFromFlags(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		return fn(ctx, cliInstance, formatter, &Arguments{Args: args, cmd: cmd})
	}
}

// Refreshed is Command for handlers that read the company list. The
// list is fetched once before fn runs.
func Refreshed(fn Func) func(*cobra.Command, []string) error {
	return Command(func(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *Arguments) error {
		if _, err := c.App.CompanyService.FetchCompanies(ctx); err != nil {
			return out.FailService("FETCH_ERROR", err)
		}
		return fn(ctx, c, out, args)
	})
}
