// Package session exposes the oracle's strategy as a sequential move
// exchange: the caller supplies the opponent's cell, the session answers
// with the oracle's. The source material drove the same exchange through
// a suspended generator; here the state is an explicit Game value.
package session

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
)

// NoCell is returned when the game ended on the opponent's move and no
// response is owed.
const NoCell = -1

type Session struct {
	ID   string
	Game *entity.Game

	oracle  *oracle.Oracle
	started bool
}

func New(id string, orc *oracle.Oracle) *Session {
	return &Session{
		ID:     id,
		Game:   entity.NewGame(),
		oracle: orc,
	}
}

// Start places the oracle's fixed opening move and returns its cell. A
// session starts exactly once.
func (that *Session) Start() (int, error) {
	if that.started {
		return 0, apperror.ErrSessionStarted
	}

	cell, err := that.oracle.Lookup(that.Game.Board)
	if err != nil {
		return 0, fmt.Errorf("failed to look up opening move: %w", err)
	}

	if err = that.Game.MakeTurn(entity.PlayerX, cell); err != nil {
		return 0, fmt.Errorf("failed to place opening move: %w", err)
	}

	that.started = true

	return cell, nil
}

// Advance marks the opponent's cell, looks up the oracle's response,
// marks it too and returns it. A rejected opponent move leaves the board
// unchanged; the caller should abandon the session on any error.
func (that *Session) Advance(opponentCell int) (int, error) {
	if !that.started {
		return 0, apperror.ErrSessionNotStarted
	}

	if that.Game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if err := that.Game.MakeTurn(entity.PlayerO, opponentCell); err != nil {
		return 0, fmt.Errorf("opponent move rejected: %w", err)
	}

	if that.Game.IsFinished() {
		return NoCell, nil
	}

	response, err := that.oracle.Lookup(that.Game.Board)
	if err != nil {
		return 0, fmt.Errorf("failed to look up response: %w", err)
	}

	if err = that.Game.MakeTurn(entity.PlayerX, response); err != nil {
		return 0, fmt.Errorf("failed to place response: %w", err)
	}

	return response, nil
}
