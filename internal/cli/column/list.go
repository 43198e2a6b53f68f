package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/kanban"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List board columns",
		Long: `List the board columns in order with their card counts.

Examples:
  applyboard column list
  applyboard column list --json
`,
		RunE: handler.Refreshed(runList),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	board := c.App.NewBoard(ctx, nil)
	columns := board.Columns()

	if out.Quiet {
		for _, col := range columns {
			fmt.Println(col.Config.Status)
		}
		return nil
	}

	if out.JSON {
		columnList := make([]map[string]interface{}, len(columns))
		for i, col := range columns {
			columnList[i] = map[string]interface{}{
				"status": col.Config.Status,
				"title":  col.Config.Title,
				"color":  col.Config.Color,
				"count":  len(col.Companies),
			}
		}
		return out.JSONResult("columns", columnList)
	}

	fmt.Println("Columns:")
	for i, col := range columns {
		fmt.Printf("  %d. %s (%s) - %s\n", i+1, col.Config.Title, col.Config.Status, countLabel(col))
	}
	return nil
}

func countLabel(col kanban.ColumnView) string {
	if len(col.Companies) == 1 {
		return "1 company"
	}
	return fmt.Sprintf("%d companies", len(col.Companies))
}
