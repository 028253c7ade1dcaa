package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(value))); d {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) IsValid() bool {
	_, err := ParseDifficulty(string(that))
	return err == nil
}
