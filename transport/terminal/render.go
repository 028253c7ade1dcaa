package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const rowSeparator = "---+---+---"

const helpText = `1-9        place your mark
r          new game
s          reset score
d <level>  difficulty: easy, medium or hard
h          help
q          quit`

func (that *Terminal) render(state usecase.GameState) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.renderBoard(state.Game))
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.status(state.Game))
	fmt.Fprintf(that.out, "difficulty: %s  wins: %d  losses: %d  draws: %d\n",
		state.Game.Difficulty, state.Score.Wins, state.Score.Losses, state.Score.Draws)
}

func (that *Terminal) renderBoard(game entity.Game) string {
	winning := make(map[int]bool, 3)
	if game.Outcome.IsWin() {
		for _, cell := range game.Outcome.Line {
			winning[cell] = true
		}
	}

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			cells = append(cells, " "+that.renderCell(game.Board[index], index, winning[index])+" ")
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that *Terminal) renderCell(mark entity.Mark, index int, winning bool) string {
	var style termenv.Style
	switch mark {
	case entity.PlayerX:
		style = that.out.String(string(mark)).Foreground(termenv.ANSIBrightCyan).Bold()
	case entity.PlayerO:
		style = that.out.String(string(mark)).Foreground(termenv.ANSIBrightMagenta).Bold()
	default:
		return that.out.String(strconv.Itoa(index + 1)).Faint().String()
	}

	if winning {
		style = style.Underline().Background(termenv.ANSIYellow)
	}

	return style.String()
}

func (that *Terminal) status(game entity.Game) string {
	outcome := game.Outcome
	switch {
	case outcome.WonBy(game.Human):
		return that.out.String("You win!").Foreground(termenv.ANSIGreen).Bold().String()
	case outcome.IsWin():
		return that.out.String("Computer wins!").Foreground(termenv.ANSIRed).Bold().String()
	case outcome.IsDraw():
		return that.out.String("Draw!").Foreground(termenv.ANSIYellow).String()
	case game.IsHumanTurn():
		return fmt.Sprintf("You are %s, your move", game.Human)
	default:
		return fmt.Sprintf("Computer (%s) is thinking...", game.Computer)
	}
}

func (that *Terminal) printHelp() {
	fmt.Fprintln(that.out, helpText)
}

func (that *Terminal) printError(err error) {
	var message string
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		message = "the game is over, press r to play again"
	case errors.Is(err, apperror.ErrCellOccupied):
		message = "that cell is already taken"
	case errors.Is(err, apperror.ErrInvalidCell):
		message = "pick a cell from 1 to 9"
	case errors.Is(err, apperror.ErrNotYourTurn):
		message = "wait for the computer to move"
	case errors.Is(err, apperror.ErrUnknownDifficulty):
		message = "difficulty must be easy, medium or hard"
	case errors.Is(err, errUnknownCommand):
		message = "unknown command, press h for help"
	default:
		message = err.Error()
	}

	fmt.Fprintln(that.out, that.out.String(message).Foreground(termenv.ANSIRed).String())
}
