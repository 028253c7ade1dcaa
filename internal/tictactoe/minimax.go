package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const winScore = 10

// BestMove runs a full minimax search for computer and returns the highest scoring cell.
// Equal scores keep the lowest index.
func BestMove(board entity.Board, computer entity.Mark) int {
	search := newSearch(computer)

	bestScore := math.MinInt
	bestMove := NoMove

	scratch := board
	for cell := range scratch {
		if scratch[cell] != entity.EmptyCell {
			continue
		}

		scratch[cell] = computer
		score := search.minimax(scratch, 0, false)
		scratch[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove
}

// Minimax scores board for computer: 10-depth for a computer win, depth-10 for a loss, 0 for a draw.
func Minimax(board entity.Board, depth int, isMaximizing bool, computer entity.Mark) int {
	return newSearch(computer).minimax(board, depth, isMaximizing)
}

// search memoizes scores by position. Within one search the depth and the side
// to move are both determined by the position, so the board alone is the key.
type search struct {
	computer entity.Mark
	human    entity.Mark

	cache map[entity.Board]int
}

func newSearch(computer entity.Mark) *search {
	return &search{
		computer: computer,
		human:    computer.Opponent(),
		cache:    make(map[entity.Board]int),
	}
}

func (that *search) minimax(board entity.Board, depth int, isMaximizing bool) int {
	if score, ok := that.cache[board]; ok {
		return score
	}

	score := that.score(board, depth, isMaximizing)
	that.cache[board] = score

	return score
}

func (that *search) score(board entity.Board, depth int, isMaximizing bool) int {
	outcome := board.Evaluate()
	switch {
	case outcome.WonBy(that.computer):
		return winScore - depth
	case outcome.WonBy(that.human):
		return depth - winScore
	case outcome.IsDraw():
		return 0
	}

	mark, bestScore := that.human, math.MaxInt
	if isMaximizing {
		mark, bestScore = that.computer, math.MinInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := that.minimax(board, depth+1, !isMaximizing)
		board[cell] = entity.EmptyCell

		if isMaximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}
