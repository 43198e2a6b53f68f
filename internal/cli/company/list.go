package company

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// ListCmd returns the company list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long: `List your companies, newest first.

Examples:
  applyboard company list
  applyboard company list --status interview
  applyboard company list --json
`,
		RunE: handler.Refreshed(runList),
	}

	cmd.Flags().String("status", "", "Only show companies with this status")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	status, err := args.Flags(out).ParseStatus("status")
	if err != nil {
		return err
	}

	companies := c.App.CompanyService.Companies()
	if status != nil {
		filtered := make([]*models.Company, 0, len(companies))
		for _, co := range companies {
			if co.Status == *status {
				filtered = append(filtered, co)
			}
		}
		companies = filtered
	}

	if out.Quiet {
		for _, co := range companies {
			fmt.Println(co.ID)
		}
		return nil
	}

	if out.JSON {
		return out.JSONResult("companies", companies)
	}

	if len(companies) == 0 {
		fmt.Println("No companies yet. Add one with: applyboard company add --name <name> --position <title>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tDEADLINE")
	for _, co := range companies {
		deadline := co.Deadline
		if deadline == "" {
			deadline = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			co.ID,
			cli.Truncate(co.Name, 30),
			cli.Truncate(co.Position, 30),
			styles.StatusBadge(co.Status),
			deadline)
	}
	return w.Flush()
}
