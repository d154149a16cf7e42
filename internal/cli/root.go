package cli

import (
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/config"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/usecase"
)

func Root(conf *config.Config, manager *usecase.SessionManager, orc *oracle.Oracle) *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe-oracle",
		Short: "Play naughts and crosses against a precomputed strategy table",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(Play(conf, manager))
	root.AddCommand(Lookup(orc))
	root.AddCommand(Table(orc))

	return root
}
