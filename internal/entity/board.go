package entity

import (
	"errors"
	"fmt"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// emptyKeyCell encodes an empty cell in the canonical board key.
const emptyKeyCell = '.'

var (
	ErrBadBoardKey = errors.New("malformed board key")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is the 9-cell grid in row-major order, cells 0-8.
type Board [9]string

func NewBoard() Board {
	return Board{}
}

// Key returns the canonical string encoding of the board, one character
// per cell with '.' for empty. It is the move table key.
func (that Board) Key() string {
	key := make([]byte, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			key[i] = emptyKeyCell
			continue
		}
		key[i] = cell[0]
	}
	return string(key)
}

// ParseBoard decodes a canonical board key back into a Board.
func ParseBoard(key string) (Board, error) {
	var board Board

	if len(key) != len(board) {
		return board, fmt.Errorf("%w: want %d cells, got %d", ErrBadBoardKey, len(board), len(key))
	}

	for i := 0; i < len(key); i++ {
		switch key[i] {
		case emptyKeyCell:
			board[i] = EmptyCell
		case 'X', 'x':
			board[i] = PlayerX
		case 'O', 'o':
			board[i] = PlayerO
		default:
			return Board{}, fmt.Errorf("%w: unexpected cell %q", ErrBadBoardKey, key[i])
		}
	}

	return board, nil
}

// IsFree reports whether the cell holds no mark.
func (that Board) IsFree(cell int) bool {
	return that[cell] == EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Result returns the winner's mark, PlayerTie for a full board with no
// winner, or EmptyCell while the game can still continue.
func (that Board) Result() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if !that.IsFull() {
		return EmptyCell
	}

	return PlayerTie
}
