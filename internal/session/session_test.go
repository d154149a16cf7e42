package session

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Start(t *testing.T) {
	t.Run("Opening move is cell 0", func(t *testing.T) {
		// Given: a fresh session
		sess := New("test", oracle.New())

		// When: starting it
		cell, err := sess.Start()

		// Then: the oracle opens with cell 0 and the board reflects it
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, entity.PlayerX, sess.Game.Board[0])
	})

	t.Run("Starting twice is rejected", func(t *testing.T) {
		sess := New("test", oracle.New())

		_, err := sess.Start()
		require.NoError(t, err)

		// When: starting again
		_, err = sess.Start()

		// Then: the session refuses
		require.ErrorIs(t, err, apperror.ErrSessionStarted)
	})
}

func TestSession_Advance(t *testing.T) {
	t.Run("Documented exchange plays 0, 6, 8", func(t *testing.T) {
		// Given: a started session
		sess := New("test", oracle.New())

		cell, err := sess.Start()
		require.NoError(t, err)
		require.Equal(t, 0, cell)

		// When: the opponent plays 1
		cell, err = sess.Advance(1)

		// Then: the oracle answers 6
		require.NoError(t, err)
		assert.Equal(t, 6, cell)

		// When: the opponent plays 3
		cell, err = sess.Advance(3)

		// Then: the oracle answers 8
		require.NoError(t, err)
		assert.Equal(t, 8, cell)

		assert.Equal(t, "XO.O..X.X", sess.Game.Board.Key())
	})

	t.Run("Occupied cell is rejected and the board is unchanged", func(t *testing.T) {
		// Given: a session with the opening exchange played
		sess := New("test", oracle.New())

		_, err := sess.Start()
		require.NoError(t, err)
		_, err = sess.Advance(1)
		require.NoError(t, err)

		before := sess.Game.Board

		// When: the opponent plays an occupied cell
		_, err = sess.Advance(6)

		// Then: ErrCellOccupied is returned and nothing moved
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, sess.Game.Board)
	})

	t.Run("Out-of-range cell is rejected and the board is unchanged", func(t *testing.T) {
		sess := New("test", oracle.New())

		_, err := sess.Start()
		require.NoError(t, err)

		before := sess.Game.Board

		_, err = sess.Advance(9)

		require.ErrorIs(t, err, entity.ErrInvalidCell)
		assert.Equal(t, before, sess.Game.Board)
	})

	t.Run("Advance before Start is rejected", func(t *testing.T) {
		sess := New("test", oracle.New())

		_, err := sess.Advance(1)

		require.ErrorIs(t, err, apperror.ErrSessionNotStarted)
	})
}

func TestSession_FullGame(t *testing.T) {
	// Given: a started session and an opponent who always takes the
	// lowest free cell
	sess := New("test", oracle.New())

	_, err := sess.Start()
	require.NoError(t, err)

	// When: playing until the game concludes
	for !sess.Game.IsFinished() {
		cell := -1
		for i := range sess.Game.Board {
			if sess.Game.Board.IsFree(i) {
				cell = i
				break
			}
		}
		require.GreaterOrEqual(t, cell, 0, "no free cell on an unfinished board")

		_, err = sess.Advance(cell)
		require.NoError(t, err)
	}

	// Then: the oracle won or the game is a tie
	assert.Contains(t, []string{entity.PlayerX, entity.PlayerTie}, sess.Game.Winner)

	// And: a finished session rejects further advances
	_, err = sess.Advance(0)
	require.ErrorIs(t, err, apperror.ErrGameFinished)
}
