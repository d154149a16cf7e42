// Package oracle prescribes moves for the X side of tic-tac-toe from a
// table precomputed over every position its own strategy can reach.
package oracle

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
)

var ErrLookupMiss = errors.New("no known response for this position")

type Oracle struct {
	table map[string]int
}

// New builds the move table once; the table is immutable afterwards.
func New() *Oracle {
	return &Oracle{table: buildTable()}
}

// Lookup returns the cell the table prescribes for a position with X to
// move. A position absent from the table is a hole in the strategy data
// and is reported as ErrLookupMiss, never papered over with a default.
func (that *Oracle) Lookup(board entity.Board) (int, error) {
	cell, ok := that.table[board.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrLookupMiss, board.Key())
	}

	return cell, nil
}

// Size returns the number of positions the table covers.
func (that *Oracle) Size() int {
	return len(that.table)
}
