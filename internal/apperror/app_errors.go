package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the common parent of every rejected placement.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrInvalidMark  = fmt.Errorf("%w: invalid player mark", ErrInvalidMove)

	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoMoveAvailable   = errors.New("no move available")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
