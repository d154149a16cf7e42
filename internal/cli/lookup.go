package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
)

// tictactoe-oracle lookup BOARD
func Lookup(orc *oracle.Oracle) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup BOARD",
		Short: "Print the oracle's prescribed move for a board position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`lookup queries the strategy table for a single position
			and prints the cell the oracle would claim.

			The position is given as nine characters in row-major
			order: X, O, or . for an empty cell. Only positions the
			oracle's own play can reach are in the table; anything
			else is reported as unknown.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			cell, err := orc.Lookup(board)
			if errors.Is(err, oracle.ErrLookupMiss) {
				return fmt.Errorf("position %s is not in the table: %w", args[0], err)
			}
			if err != nil {
				return fmt.Errorf("failed to look up position: %w", err)
			}

			cmd.Printf("cell %d\n", cell)

			return nil
		},
	}
}
