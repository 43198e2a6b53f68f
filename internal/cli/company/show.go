package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/tui/components"
)

// ShowCmd returns the company show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show company details",
		Long:  "Display all details of a company including its description and cover letter.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	company, err := c.App.CompanyService.GetCompany(ctx, args.Arg(0))
	if err != nil {
		return out.FailWithSuggestion(cli.ExitCodeFor(err), "COMPANY_NOT_FOUND", err,
			"List your companies with: applyboard company list")
	}

	if out.Quiet {
		fmt.Println(company.ID)
		return nil
	}
	if out.JSON {
		return out.JSONResult("company", company)
	}

	fmt.Println(renderCompany(company))
	return nil
}

func renderCompany(co *models.Company) string {
	var content strings.Builder
	width := styles.CardWidth - 8

	content.WriteString(styles.TitleStyle.Render(co.Name + ": " + co.Position))
	content.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render(label),
			styles.ValueStyle.Render(value)))
	}

	content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Status:"), styles.StatusBadge(co.Status)))
	field("Type:", string(co.PositionType))
	field("Deadline:", co.Deadline)
	field("Link:", co.ApplicationLink)
	if !co.CreatedAt.IsZero() {
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Added:"),
			styles.SubtitleStyle.Render(co.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"))))
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: co.Description,
		Width:       width,
	}))
	content.WriteString("\n")

	if co.CoverLetter != "" || len(co.CoverLetterSections) > 0 {
		content.WriteString(styles.SectionStyle.Render("Cover Letter"))
		content.WriteString("\n")
		if co.CoverLetter != "" {
			content.WriteString(components.RenderDescription(components.DescriptionProps{
				Description: co.CoverLetter,
				Width:       width,
			}))
			content.WriteString("\n")
		}
		for _, sec := range co.CoverLetterSections {
			heading := sec.Title
			if sec.MaxLength != nil {
				heading = fmt.Sprintf("%s (%d/%d)", sec.Title, len([]rune(sec.Content)), *sec.MaxLength)
			}
			if sec.OverLimit() {
				heading += " " + styles.ErrorStyle.Render("OVER LIMIT")
			}
			content.WriteString(styles.LabelStyle.Render(heading))
			content.WriteString("\n")
			content.WriteString(components.RenderDescription(components.DescriptionProps{
				Description: sec.Content,
				Placeholder: "Empty",
				Width:       width,
			}))
			content.WriteString("\n")
		}
	}

	return styles.CardStyle.Render(content.String())
}
