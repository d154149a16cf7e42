package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/config"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/session"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/usecase"
)

// tictactoe-oracle play
func Play(conf *config.Config, manager *usecase.SessionManager) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the oracle",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive game. The oracle moves first
			and answers every move you make from its precomputed
			strategy table.

			Cells are numbered 0-8 in row-major order. Type a cell
			index to claim it, or q to give up.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, opening, err := manager.CreateSession()
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}

			cmd.Printf("the oracle opens with cell %d\n", opening)
			if conf.Game.ShowBoard {
				cmd.Println(renderBoard(sess.Game.Board))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				cmd.Print("your move (0-8): ")
				if !scanner.Scan() {
					break
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "q" || input == "quit" {
					manager.EndSession(sess.ID)
					cmd.Println("game abandoned")
					break
				}

				cell, err := strconv.Atoi(input)
				if err != nil {
					cmd.Printf("not a cell index: %q\n", input)
					continue
				}

				response, game, err := manager.Advance(sess.ID, cell)
				switch {
				case errors.Is(err, apperror.ErrCellOccupied):
					cmd.Printf("cell %d is already taken\n", cell)
					continue
				case errors.Is(err, entity.ErrInvalidCell):
					cmd.Printf("cell %d is out of range\n", cell)
					continue
				case err != nil:
					return fmt.Errorf("failed to advance game: %w", err)
				}

				if response != session.NoCell {
					cmd.Printf("the oracle answers with cell %d\n", response)
				}
				if conf.Game.ShowBoard {
					cmd.Println(renderBoard(game.Board))
				}

				if game.IsFinished() {
					switch game.Winner {
					case entity.PlayerX:
						cmd.Println("the oracle wins")
					case entity.PlayerO:
						cmd.Println("you win")
					default:
						cmd.Println("a draw")
					}
					break
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		},
	}
}

// renderBoard draws the grid with marks in place and cell numbers on the
// free cells.
func renderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			if board.IsFree(cell) {
				sb.WriteString(strconv.Itoa(cell))
			} else {
				sb.WriteString(board[cell])
			}
			if col < 2 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteByte('\n')
		if row < 2 {
			sb.WriteString("---------\n")
		}
	}

	return sb.String()
}
