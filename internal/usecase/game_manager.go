package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type moveSelector interface {
	Select(board entity.Board, difficulty entity.Difficulty, computer entity.Mark) (int, error)
}

// GameState is a copy of the controller's state safe to hand to a front end.
type GameState struct {
	Game  entity.Game  `json:"game"`
	Score entity.Score `json:"score"`
}

// GameManager owns the single-player session: the current game, the difficulty and the score.
// It is not safe for concurrent use; a front end drives it one turn at a time.
type GameManager struct {
	logger   *slog.Logger
	selector moveSelector

	thinkDelay time.Duration
	human      entity.Mark
	difficulty entity.Difficulty

	game  *entity.Game
	score entity.Score
}

func NewGameManager(logger *slog.Logger, conf *config.Config, selector moveSelector) *GameManager {
	manager := &GameManager{
		logger:   logger.With("component", "game_manager"),
		selector: selector,

		thinkDelay: config.SanitizeDelay(conf.ThinkDelay),
		human:      conf.HumanMark,
		difficulty: conf.Difficulty,
	}

	manager.game = manager.newGame()

	return manager
}

func (that *GameManager) State() GameState {
	return GameState{
		Game:  *that.game,
		Score: that.score,
	}
}

// Play places the human's mark on cell and, if the game goes on, answers with the computer's move.
func (that *GameManager) Play(ctx context.Context, cell int) (GameState, error) {
	log := that.logger.With("method", "Play", "game_id", that.game.ID)

	if that.game.IsFinished() {
		return that.State(), apperror.ErrGameFinished
	}

	if !that.game.IsHumanTurn() {
		return that.State(), apperror.ErrNotYourTurn
	}

	if err := that.game.MakeTurn(that.human, cell); err != nil {
		log.Debug("human move rejected", "cell", cell, "error", err)
		return that.State(), fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("human moved", "cell", cell)

	if that.game.IsFinished() {
		that.finishGame()
		return that.State(), nil
	}

	if err := that.ComputerTurn(ctx); err != nil {
		return that.State(), err
	}

	return that.State(), nil
}

// ComputerTurn waits the configured thinking delay and plays the selector's move.
func (that *GameManager) ComputerTurn(ctx context.Context) error {
	log := that.logger.With("method", "ComputerTurn", "game_id", that.game.ID)

	if !that.game.IsComputerTurn() {
		return apperror.ErrNotYourTurn
	}

	if err := sleep(ctx, that.thinkDelay); err != nil {
		return fmt.Errorf("computer turn interrupted: %w", err)
	}

	cell, err := that.selector.Select(that.game.Board, that.game.Difficulty, that.game.Computer)
	if err != nil {
		return fmt.Errorf("failed to select computer move: %w", err)
	}

	if err = that.game.MakeTurn(that.game.Computer, cell); err != nil {
		return fmt.Errorf("computer made an invalid move: %w", err)
	}

	log.Debug("computer moved", "cell", cell, "difficulty", that.game.Difficulty)

	if that.game.IsFinished() {
		that.finishGame()
	}

	return nil
}

// Reset starts a new game. When the computer holds X it opens immediately.
func (that *GameManager) Reset(ctx context.Context) (GameState, error) {
	that.game = that.newGame()

	that.logger.Info("game started", "game_id", that.game.ID, "difficulty", that.difficulty, "human", that.human)

	if that.game.IsComputerTurn() {
		if err := that.ComputerTurn(ctx); err != nil {
			return that.State(), err
		}
	}

	return that.State(), nil
}

// ResetScore clears the tally and starts a new game.
func (that *GameManager) ResetScore(ctx context.Context) (GameState, error) {
	that.score.Reset()

	return that.Reset(ctx)
}

// SetDifficulty switches the tier and starts a new game.
func (that *GameManager) SetDifficulty(ctx context.Context, difficulty entity.Difficulty) (GameState, error) {
	parsed, err := entity.ParseDifficulty(string(difficulty))
	if err != nil {
		return that.State(), err
	}

	that.difficulty = parsed

	return that.Reset(ctx)
}

func (that *GameManager) newGame() *entity.Game {
	return entity.NewGame(uuid.NewString(), that.human, that.difficulty)
}

func (that *GameManager) finishGame() {
	that.score.Record(that.game.Outcome, that.human)

	that.logger.Info("game finished",
		"game_id", that.game.ID,
		"status", that.game.Outcome.Status,
		"winner", that.game.Outcome.Winner,
		"wins", that.score.Wins,
		"losses", that.score.Losses,
		"draws", that.score.Draws,
	)
}

// sleep blocks for d or until ctx is done. d never comes from player input.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
