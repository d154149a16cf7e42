package cli

import (
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
)

// tictactoe-oracle table
func Table(orc *oracle.Oracle) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the size of the precomputed strategy table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("%d positions\n", orc.Size())
			return nil
		},
	}
}
