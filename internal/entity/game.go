package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Game is the controller-owned state of one match between the human and the computer.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"player_turn"`
	Outcome    Outcome    `json:"outcome"`
	Human      Mark       `json:"human"`
	Computer   Mark       `json:"computer"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewGame starts an empty board with X to move.
func NewGame(id string, human Mark, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      NewBoard(),
		Turn:       PlayerX,
		Outcome:    Outcome{Status: StatusInProgress},
		Human:      human,
		Computer:   human.Opponent(),
		Difficulty: difficulty,
	}
}

// MakeTurn places mark on cell, re-evaluates the board and passes the turn.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(cell, mark)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Evaluate()

	if that.Outcome.InProgress() {
		that.Turn = that.Board.Turn()
		return
	}

	that.Turn = EmptyCell
}

func (that *Game) IsFinished() bool {
	return !that.Outcome.InProgress()
}

func (that *Game) IsHumanTurn() bool {
	return !that.IsFinished() && that.Turn == that.Human
}

func (that *Game) IsComputerTurn() bool {
	return !that.IsFinished() && that.Turn == that.Computer
}
