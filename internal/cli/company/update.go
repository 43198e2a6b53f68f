package company

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// UpdateCmd returns the company update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a company",
		Long: `Update the fields you pass; everything else is left as is.

Examples:
  applyboard company update 3f2a... --deadline 2026-12-01
  applyboard company update 3f2a... --description "" --link https://acme.example/apply

  # Replace the cover letter sections
  applyboard company update 3f2a... --section "Why us[500]=..." --section "About me=..."
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().String("name", "", "Company name")
	cmd.Flags().String("position", "", "Position title")
	cmd.Flags().String("type", "", "Position type: new-grad, intern-conversion, intern-experience")
	cmd.Flags().String("status", "", "Status")
	cmd.Flags().String("deadline", "", "Application deadline (YYYY-MM-DD, empty clears it)")
	cmd.Flags().String("description", "", "Job description (markdown)")
	cmd.Flags().String("link", "", "Application link")
	cmd.Flags().String("cover-letter", "", "Cover letter text")
	cmd.Flags().StringArray("section", nil, `Cover letter section as "Title=Content" or "Title[max]=Content" (repeatable, replaces all)`)
	cmd.Flags().Bool("clear-sections", false, "Remove every cover letter section")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	id := args.Arg(0)
	flags := args.Flags(out)
	cmd := args.GetCmd()

	var update models.CompanyUpdate
	var err error

	if update.Status, err = flags.ParseStatus("status"); err != nil {
		return err
	}
	if update.PositionType, err = flags.ParsePositionType("type"); err != nil {
		return err
	}
	if update.Deadline, err = flags.ParseDeadline("deadline"); err != nil {
		return err
	}
	update.Name = flags.ParseString("name")
	update.Position = flags.ParseString("position")
	update.Description = flags.ParseString("description")
	update.ApplicationLink = flags.ParseString("link")
	update.CoverLetter = flags.ParseString("cover-letter")

	if clearSections, _ := cmd.Flags().GetBool("clear-sections"); clearSections {
		empty := []models.CoverLetterSection{}
		update.CoverLetterSections = &empty
	} else if cmd.Flags().Changed("section") {
		raw, _ := cmd.Flags().GetStringArray("section")
		sections, err := cli.ParseSections(raw)
		if err != nil {
			return out.Fail(cli.ExitDataErr, "INVALID_SECTION", err)
		}
		update.CoverLetterSections = &sections
	}

	if update.IsEmpty() {
		return out.FailWithSuggestion(cli.ExitUsage, "NO_CHANGES",
			fmt.Errorf("nothing to update"),
			"Pass at least one field flag, e.g. --deadline 2026-12-01")
	}

	if err := c.App.CompanyService.UpdateCompany(ctx, id, update); err != nil {
		return out.FailService("UPDATE_FAILED", err)
	}

	return printResult(ctx, c, out, id, "updated")
}

// printResult reports a successful write using the fresh record
func printResult(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, id, verb string) error {
	if out.Quiet {
		fmt.Println(id)
		return nil
	}
	company, err := c.App.CompanyService.GetCompany(ctx, id)
	if err != nil {
		return out.FailService("FETCH_ERROR", err)
	}
	if out.JSON {
		return out.JSONResult("company", company)
	}
	fmt.Printf("%s %s %s (%s)\n", styles.SuccessStyle.Render("✓"), company.Name, verb, styles.StatusBadge(company.Status))
	return nil
}
