package oracle

import (
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
)

const winScore = 100

// preference fixes the scan order when search values tie: the opening
// corner first, then the corners that extend its diagonal threats. The
// first three moves of the resulting book are 0, 6 and 8.
var preference = [9]int{0, 6, 8, 2, 4, 1, 3, 5, 7}

type tableBuilder struct {
	table map[string]int
	memo  map[string]int // transposition table for search values
}

func buildTable() map[string]int {
	builder := &tableBuilder{
		table: make(map[string]int),
		memo:  make(map[string]int),
	}

	builder.expand(entity.NewBoard())

	return builder.table
}

// expand records the prescribed move for a position with X to move, then
// recurses into every opponent reply that keeps the game going. The table
// is therefore closed: any position reachable through oracle play has an
// entry.
func (that *tableBuilder) expand(board entity.Board) {
	key := board.Key()
	if _, ok := that.table[key]; ok {
		return
	}

	move := that.bestMove(board)
	that.table[key] = move

	board[move] = entity.PlayerX
	if board.Result() != entity.EmptyCell {
		return
	}

	for cell := range board {
		if !board.IsFree(cell) {
			continue
		}

		reply := board
		reply[cell] = entity.PlayerO
		if reply.Result() != entity.EmptyCell {
			continue
		}

		that.expand(reply)
	}
}

func (that *tableBuilder) bestMove(board entity.Board) int {
	bestCell, bestScore := -1, -2*winScore

	for _, cell := range preference {
		if !board.IsFree(cell) {
			continue
		}

		next := board
		next[cell] = entity.PlayerX

		if score := -that.search(next, entity.PlayerO); score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

// search is a negamax over the remaining game, scored from the side to
// move. Scores decay one point per ply so that faster wins and slower
// losses rank higher; the decayed values are depth-relative, which keeps
// them safe to memoize.
func (that *tableBuilder) search(board entity.Board, mark string) int {
	switch board.Result() {
	case entity.PlayerX, entity.PlayerO:
		// the previous mover completed a line
		return -winScore
	case entity.PlayerTie:
		return 0
	}

	key := mark + board.Key()
	if score, ok := that.memo[key]; ok {
		return score
	}

	best := -2 * winScore
	for _, cell := range preference {
		if !board.IsFree(cell) {
			continue
		}

		next := board
		next[cell] = mark

		score := -that.search(next, toggleMark(mark))
		switch {
		case score > 0:
			score--
		case score < 0:
			score++
		}

		if score > best {
			best = score
		}
	}

	that.memo[key] = best

	return best
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
