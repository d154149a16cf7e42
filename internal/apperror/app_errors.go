package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrSessionStarted    = errors.New("session is already started")
	ErrSessionNotStarted = errors.New("session is not started")
	ErrSessionNotFound   = errors.New("session not found")
)
