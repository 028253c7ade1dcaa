package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
}

// New returns a context bounded by maxWaitDuration and a config with no thinking delay.
// Logs are discarded unless TEST_LOG is set.
func New(t *testing.T, human entity.Mark, difficulty entity.Difficulty) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var sink io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		sink = os.Stderr
	}

	logger := slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: &config.Config{
			LogLevel:   "debug",
			Difficulty: difficulty,
			HumanMark:  human,
		},
	}
}
