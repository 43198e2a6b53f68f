package company

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/applyboard/internal/cli"
	"github.com/thenoetrevino/applyboard/internal/cli/handler"
	"github.com/thenoetrevino/applyboard/internal/cli/styles"
)

// DeleteCmd returns the company delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company",
		Long: `Delete a company and its cover letter sections.

Examples:
  applyboard company delete 3f2a...
  applyboard company delete 3f2a... --force
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation prompt")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, out *cli.OutputFormatter, args *handler.Arguments) error {
	id := args.Arg(0)
	force, _ := args.GetCmd().Flags().GetBool("force")

	company, err := c.App.CompanyService.GetCompany(ctx, id)
	if err != nil {
		return out.FailService("COMPANY_NOT_FOUND", err)
	}

	// Machine output never prompts
	if !force && !out.JSON && !out.Quiet {
		fmt.Printf("Delete %s (%s)? [y/N]: ", company.Name, company.Position)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := c.App.CompanyService.DeleteCompany(ctx, id); err != nil {
		return out.FailService("DELETE_FAILED", err)
	}

	if out.Quiet {
		fmt.Println(id)
		return nil
	}
	if out.JSON {
		return out.JSONResult("deleted", map[string]string{"id": id, "name": company.Name})
	}
	fmt.Printf("%s %s deleted\n", styles.SuccessStyle.Render("✓"), company.Name)
	return nil
}
