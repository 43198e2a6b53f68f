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

// AddCmd returns the company add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a company",
		Long: `Add a company to the board. New companies start in "To Apply"
unless --status is given.

Examples:
  applyboard company add --name "Acme" --position "Backend Engineer"

  applyboard company add --name "Acme" --position "SWE Intern" \
    --type intern-conversion --deadline 2026-11-01 \
    --link https://acme.example/jobs/42

  # Print only the new ID
  applyboard company add --name "Acme" --position "SWE" --quiet
`,
		RunE: handler.Command(runAdd),
	}

	cmd.Flags().String("name", "", "Company name (required)")
	cmd.Flags().String("position", "", "Position title (required)")
	cmd.Flags().String("type", "", "Position type: new-grad, intern-conversion, intern-experience")
	cmd.Flags().String("status", "", "Initial status (default: pending)")
	cmd.Flags().String("deadline", "", "Application deadline (YYYY-MM-DD)")
	cmd.Flags().String("description", "", "Job description (markdown)")
	cmd.Flags().String("link", "", "Application link (http or https)")
	cmd.Flags().String("cover-letter", "", "Cover letter text")
	cmd.Flags().StringArray("section", nil, `Cover letter section as "Title=Content" or "Title[max]=Content" (repeatable)`)

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	flags := args.Flags(out)
	cmd := args.GetCmd()

	status, err := flags.ParseStatus("status")
	if err != nil {
		return err
	}
	positionType, err := flags.ParsePositionType("type")
	if err != nil {
		return err
	}
	deadline, err := flags.ParseDeadline("deadline")
	if err != nil {
		return err
	}

	rawSections, _ := cmd.Flags().GetStringArray("section")
	sections, err := cli.ParseSections(rawSections)
	if err != nil {
		return out.Fail(cli.ExitDataErr, "INVALID_SECTION", err)
	}

	draft := models.CompanyDraft{CoverLetterSections: sections}
	draft.Name, _ = cmd.Flags().GetString("name")
	draft.Position, _ = cmd.Flags().GetString("position")
	draft.Description, _ = cmd.Flags().GetString("description")
	draft.ApplicationLink, _ = cmd.Flags().GetString("link")
	draft.CoverLetter, _ = cmd.Flags().GetString("cover-letter")
	if status != nil {
		draft.Status = *status
	}
	if positionType != nil {
		draft.PositionType = *positionType
	}
	if deadline != nil {
		draft.Deadline = *deadline
	}

	company, err := c.App.CompanyService.AddCompany(ctx, draft)
	if err != nil {
		return out.FailService("ADD_FAILED", err)
	}

	if out.Quiet {
		fmt.Println(company.ID)
		return nil
	}
	if out.JSON {
		return out.JSONResult("company", company)
	}

	fmt.Printf("%s %s (%s) added to %s\n",
		styles.SuccessStyle.Render("✓"),
		company.Name,
		company.ID,
		styles.StatusBadge(company.Status))
	return nil
}
