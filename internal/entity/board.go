package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos lists every winning line: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether the mark belongs to one of the two sides.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other side's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is a row-major 3x3 grid. It is a value: copying it copies the whole game state.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// Evaluate reports the outcome of the position. Lines are scanned in WinCombos order
// and the first completed one wins.
func (that Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: StatusWin, Winner: a, Line: combo}
		}
	}

	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

// LegalMoves returns the empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// ApplyMove returns a copy of the board with cell set to mark. The receiver is not modified.
func (that Board) ApplyMove(cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !that.Evaluate().InProgress() {
		return that, apperror.ErrGameFinished
	}

	if that[cell] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	next := that
	next[cell] = mark

	return next, nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Turn returns the side to move, assuming X opened the game.
func (that Board) Turn() Mark {
	var x, o int
	for _, cell := range that {
		switch cell {
		case PlayerX:
			x++
		case PlayerO:
			o++
		}
	}

	if x > o {
		return PlayerO
	}

	return PlayerX
}

func (that Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n-+-+-\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			mark := that[row*3+col]
			if mark == EmptyCell {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(string(mark))
		}
	}

	return sb.String()
}
