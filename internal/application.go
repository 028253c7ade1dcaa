package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solo/transport/terminal"
)

// RunApp - runs the game on stdin/stdout until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	selector := tictactoe.NewRandomSelector()
	gameManager := usecase.NewGameManager(logger, conf, selector)
	term := terminal.New(logger, gameManager, in, out)

	// run terminal
	termErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "difficulty", conf.Difficulty, "human", conf.HumanMark, "think_delay", conf.ThinkDelay)
		termErrCh <- term.Run(ctx)
	}()

	select {
	case err := <-termErrCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
		log.Info("Game closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
