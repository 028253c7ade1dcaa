package tictactoe

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Selector chooses the computer's cell for a difficulty tier. It keeps no state between calls.
type Selector struct {
	rng RandomSource
}

func NewSelector(rng RandomSource) *Selector {
	return &Selector{
		rng: rng,
	}
}

// NewRandomSelector seeds a PCG generator from the runtime's random source.
func NewRandomSelector() *Selector {
	return NewSelector(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint: gosec // it's ok
}

// Select returns the cell the computer should occupy. A full or finished board yields
// apperror.ErrNoMoveAvailable.
func (that *Selector) Select(board entity.Board, difficulty entity.Difficulty, computer entity.Mark) (int, error) {
	if !computer.IsPlayer() {
		return NoMove, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, computer)
	}

	if outcome := board.Evaluate(); !outcome.InProgress() {
		return NoMove, fmt.Errorf("%w: board is %s", apperror.ErrNoMoveAvailable, outcome.Status)
	}

	var cell int
	switch difficulty {
	case entity.EasyDifficulty:
		cell = RandomMove(board, that.rng)
	case entity.MediumDifficulty:
		cell = MediumMove(board, computer, that.rng)
	case entity.HardDifficulty:
		cell = BestMove(board, computer)
	default:
		return NoMove, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	if cell == NoMove {
		return NoMove, apperror.ErrNoMoveAvailable
	}

	return cell, nil
}
