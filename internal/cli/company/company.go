package company

import (
	"github.com/spf13/cobra"
)

// CompanyCmd returns the company parent command
func CompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "company",
		Aliases: []string{"companies", "co"},
		Short:   "Manage the companies you are applying to",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
