package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrInvalidCell = errors.New("invalid cell index")

type Game struct {
	Board  Board
	Winner string
	Status string
	Turn   string
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

func (that *Game) UpdateState() {
	switch winner := that.Board.Result(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.IsFree(cell) {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark

	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}

	that.UpdateState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}
