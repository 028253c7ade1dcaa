package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const (
	actionReset      = "r"
	actionResetScore = "s"
	actionDifficulty = "d"
	actionHelp       = "h"
	actionQuit       = "q"
)

var errUnknownCommand = errors.New("unknown command")

type gameManager interface {
	State() usecase.GameState
	Play(ctx context.Context, cell int) (usecase.GameState, error)
	Reset(ctx context.Context) (usecase.GameState, error)
	ResetScore(ctx context.Context) (usecase.GameState, error)
	SetDifficulty(ctx context.Context, difficulty entity.Difficulty) (usecase.GameState, error)
}

// Terminal is a line-oriented front end: one command per line, the board redrawn after each.
type Terminal struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out *termenv.Output

	handlers map[string]func(ctx context.Context, args []string) (usecase.GameState, error)
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Terminal {
	terminal := &Terminal{
		logger:  logger.With("component", "terminal"),
		manager: manager,

		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out, opts...),

		handlers: make(map[string]func(context.Context, []string) (usecase.GameState, error)),
	}

	terminal.handlers[actionReset] = terminal.handleReset
	terminal.handlers[actionResetScore] = terminal.handleResetScore
	terminal.handlers[actionDifficulty] = terminal.handleDifficulty
	terminal.handlers[actionHelp] = terminal.handleHelp

	return terminal
}

// Run starts a game and processes commands until quit, end of input or ctx is done.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	state, err := that.manager.Reset(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printHelp()
	that.render(state)

	for {
		if err = ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(that.out, "> ")
		if !that.in.Scan() {
			if err = that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		fields := strings.Fields(strings.ToLower(that.in.Text()))
		if len(fields) == 0 {
			continue
		}

		if fields[0] == actionQuit {
			log.Info("player quit")
			return nil
		}

		state, err = that.dispatch(ctx, fields)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.Debug("command failed", "command", fields[0], "error", err)
			that.printError(err)
			continue
		}

		that.render(state)
	}
}

func (that *Terminal) dispatch(ctx context.Context, fields []string) (usecase.GameState, error) {
	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return that.handlePlay(ctx, cell)
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		return that.manager.State(), fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}

	return handler(ctx, fields[1:])
}

// handlePlay takes the 1-9 numbering shown on the board.
func (that *Terminal) handlePlay(ctx context.Context, cell int) (usecase.GameState, error) {
	return that.manager.Play(ctx, cell-1)
}

func (that *Terminal) handleReset(ctx context.Context, _ []string) (usecase.GameState, error) {
	return that.manager.Reset(ctx)
}

func (that *Terminal) handleResetScore(ctx context.Context, _ []string) (usecase.GameState, error) {
	return that.manager.ResetScore(ctx)
}

func (that *Terminal) handleDifficulty(ctx context.Context, args []string) (usecase.GameState, error) {
	if len(args) == 0 {
		return that.manager.State(), fmt.Errorf("%w: missing difficulty", errUnknownCommand)
	}

	return that.manager.SetDifficulty(ctx, entity.Difficulty(args[0]))
}

func (that *Terminal) handleHelp(_ context.Context, _ []string) (usecase.GameState, error) {
	that.printHelp()
	return that.manager.State(), nil
}
