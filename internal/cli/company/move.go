package company

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
)

// MoveCmd returns the company move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a company to another column",
		Long: `Move a company to another stage of the pipeline. The status may be
given as a value (interview) or a column title ("Aptitude Test").

Examples:
  applyboard company move 3f2a... interview
  applyboard company move 3f2a... Offer
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runMove),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	id := args.Arg(0)
	status, err := cli.ParseStatus(args.Arg(1))
	if err != nil {
		return out.FailWithSuggestion(cli.ExitValidation, "INVALID_STATUS", err,
			"Use one of: pending, applied, aptitude, interview, passed, rejected")
	}

	current, err := c.App.CompanyService.GetCompany(ctx, id)
	if err != nil {
		return out.FailService("COMPANY_NOT_FOUND", err)
	}
	// Dropping a card on its own column is a no-op
	if current.Status == status {
		return printResult(ctx, c, out, id, "already in")
	}

	if err := c.App.CompanyService.UpdateStatus(ctx, id, status); err != nil {
		return out.FailService("MOVE_FAILED", err)
	}
	return printResult(ctx, c, out, id, "moved to")
}
