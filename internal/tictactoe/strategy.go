package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// NoMove is returned by the strategies when the board has no empty cell.
const NoMove = -1

// mediumOptimalRate is the chance that the medium tier plays the minimax move.
const mediumOptimalRate = 0.5

// RandomSource is the randomness used by the easy and medium tiers.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// RandomMove picks one of the empty cells uniformly.
func RandomMove(board entity.Board, rng RandomSource) int {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return NoMove
	}

	return moves[rng.IntN(len(moves))]
}

// MediumMove plays BestMove when the draw falls below mediumOptimalRate and RandomMove otherwise.
func MediumMove(board entity.Board, computer entity.Mark, rng RandomSource) int {
	if rng.Float64() < mediumOptimalRate {
		return BestMove(board, computer)
	}

	return RandomMove(board, rng)
}
