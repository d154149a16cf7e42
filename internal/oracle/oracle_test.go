package oracle

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOracle_OpeningMove(t *testing.T) {
	orc := New()

	// Given: an empty board
	board := entity.NewBoard()

	// When: looking up the opening move
	cell, err := orc.Lookup(board)

	// Then: the oracle opens with cell 0
	require.NoError(t, err)
	assert.Equal(t, 0, cell)
}

func TestOracle_DocumentedLine(t *testing.T) {
	orc := New()

	t.Run("Responds 6 to an opponent at 1", func(t *testing.T) {
		// Given: the board after the opening and an opponent reply at 1
		board, err := entity.ParseBoard("XO.......")
		require.NoError(t, err)

		// When: looking up the response
		cell, err := orc.Lookup(board)

		// Then: the table prescribes cell 6
		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Responds 8 to a further opponent at 3", func(t *testing.T) {
		// Given: the board after X at 0 and 6, opponent at 1 and 3
		board, err := entity.ParseBoard("XO.O..X..")
		require.NoError(t, err)

		// When: looking up the response
		cell, err := orc.Lookup(board)

		// Then: the table prescribes cell 8
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})
}

func TestOracle_LookupMiss(t *testing.T) {
	orc := New()

	t.Run("Position outside the oracle's own play is unknown", func(t *testing.T) {
		// Given: a board the oracle can never reach (it always opens at 0)
		board, err := entity.ParseBoard(".O..X....")
		require.NoError(t, err)

		// When: looking it up
		_, err = orc.Lookup(board)

		// Then: the miss is reported, not defaulted
		require.ErrorIs(t, err, ErrLookupMiss)
	})

	t.Run("Board with only an opponent mark is unknown", func(t *testing.T) {
		board, err := entity.ParseBoard("....O....")
		require.NoError(t, err)

		_, err = orc.Lookup(board)

		require.ErrorIs(t, err, ErrLookupMiss)
	})
}

// walkGames drives every game where the oracle plays its table move and
// the opponent tries each legal reply in turn, calling visit with the
// final board of each game.
func walkGames(t *testing.T, orc *Oracle, board entity.Board, visit func(entity.Board)) {
	t.Helper()

	cell, err := orc.Lookup(board)
	require.NoError(t, err, "no table entry for reachable position %s", board.Key())

	board[cell] = entity.PlayerX
	if board.Result() != entity.EmptyCell {
		visit(board)
		return
	}

	for reply := range board {
		if !board.IsFree(reply) {
			continue
		}

		next := board
		next[reply] = entity.PlayerO
		if next.Result() != entity.EmptyCell {
			visit(next)
			continue
		}

		walkGames(t, orc, next, visit)
	}
}

func TestOracle_CoversReachablePositions(t *testing.T) {
	orc := New()

	// When: walking every game the oracle can be drawn into
	games := 0
	walkGames(t, orc, entity.NewBoard(), func(entity.Board) {
		games++
	})

	// Then: every lookup along the way succeeded (asserted in the walk)
	assert.Positive(t, games)
	assert.Positive(t, orc.Size())
}

func TestOracle_NeverLoses(t *testing.T) {
	orc := New()

	// Then: no complete game ends with the opponent winning
	walkGames(t, orc, entity.NewBoard(), func(final entity.Board) {
		result := final.Result()
		require.NotEqual(t, entity.PlayerO, result, "oracle lost the game ending at %s", final.Key())
		assert.Contains(t, []string{entity.PlayerX, entity.PlayerTie}, result)
	})
}
