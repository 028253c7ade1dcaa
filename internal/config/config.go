package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// MaxThinkDelay caps the computer's artificial pause.
const MaxThinkDelay = 2 * time.Second

var ErrInvalidHumanMark = errors.New("human mark must be X or O")

type Config struct {
	LogLevel   string            `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Difficulty entity.Difficulty `yaml:"difficulty" env:"DIFFICULTY" env-default:"medium"`
	ThinkDelay time.Duration     `yaml:"think-delay" env:"THINK_DELAY" env-default:"400ms"`
	HumanMark  entity.Mark       `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
}

// MustLoad - load all configurations from the yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.ThinkDelay = SanitizeDelay(config.ThinkDelay)

	return config, nil
}

func (that *Config) Validate() error {
	difficulty, err := entity.ParseDifficulty(string(that.Difficulty))
	if err != nil {
		return fmt.Errorf("invalid difficulty: %w", err)
	}
	that.Difficulty = difficulty

	if !that.HumanMark.IsPlayer() {
		return fmt.Errorf("%w: got %q", ErrInvalidHumanMark, that.HumanMark)
	}

	return nil
}

// SanitizeDelay clamps d to [0, MaxThinkDelay].
func SanitizeDelay(d time.Duration) time.Duration {
	return min(max(d, 0), MaxThinkDelay)
}
