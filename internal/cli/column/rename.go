package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <status> <title>",
		Short: "Rename a board column",
		Long: `Give a column a new title. The title is saved with your settings
and used by the board from then on.

Examples:
  applyboard column rename passed "Offers"
  applyboard column rename aptitude "OA / Take-home"
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runRename),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	status, err := cli.ParseStatus(args.Arg(0))
	if err != nil {
		return out.FailWithSuggestion(cli.ExitValidation, "INVALID_STATUS", err,
			"List columns with: applyboard column list")
	}
	title := args.Arg(1)

	board := c.App.NewBoard(ctx, nil)
	if err := board.RenameColumn(ctx, status, title); err != nil {
		return out.FailService("RENAME_FAILED", err)
	}

	if out.Quiet {
		fmt.Println(status)
		return nil
	}
	if out.JSON {
		return out.JSONResult("column", map[string]interface{}{
			"status": status,
			"title":  title,
		})
	}
	fmt.Printf("%s Column %s renamed to %q\n", styles.SuccessStyle.Render("✓"), status, title)
	return nil
}
