package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
		Long:  "The board has one column per application status. Columns can be renamed but not added or removed.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())

	return cmd
}
