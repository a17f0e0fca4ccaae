// Package config loads the game settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/nautica/internal/error"
	mb "github.com/saeidalz13/nautica/models/battleship"
	"github.com/sirupsen/logrus"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

// MinBoardSize is the smallest board the console accepts.
const MinBoardSize = 2

type Config struct {
	Stage       string `env:"STAGE" envDefault:"dev"`
	BoardSize   int    `env:"NAUTICA_BOARD_SIZE" envDefault:"0"`
	Difficulty  string `env:"NAUTICA_DIFFICULTY" envDefault:"normal"`
	MaxAttempts int    `env:"NAUTICA_MAX_ATTEMPTS" envDefault:"0"`
	Seed        int64  `env:"NAUTICA_SEED" envDefault:"0"`
	LogLevel    string `env:"NAUTICA_LOG_LEVEL" envDefault:"warn"`
	LogFile     string `env:"NAUTICA_LOG_FILE"`
	NoColor     bool   `env:"NAUTICA_NO_COLOR" envDefault:"false"`
	ClearScreen bool   `env:"NAUTICA_CLEAR_SCREEN" envDefault:"true"`
}

// LoadDotEnv loads envFile unless running in prod. A missing file is not
// an error.
func LoadDotEnv(envFile string) error {
	if os.Getenv("STAGE") == StageProd {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse reads the environment into a Config and then applies flags.
func Parse(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	flags.StringVar(&cfg.Stage, "stage", cfg.Stage, "Development stage (dev or prod)")
	flags.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "Board size, 0 asks the player")
	flags.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Difficulty: easy, normal or hard")
	flags.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "Missed shots allowed per round, 0 uses the board size")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for ship placement, 0 picks a random one")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored board output")
	flags.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "Clear the terminal between turns")

	if args == nil {
		args = []string{}
	}
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.BoardSize != 0 && c.BoardSize < MinBoardSize {
		return cerr.ErrBoardSizeTooSmall(c.BoardSize, MinBoardSize)
	}
	if _, err := c.GameDifficulty(); err != nil {
		return err
	}
	if _, err := c.LogrusLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) GameDifficulty() (mb.Difficulty, error) {
	return mb.ParseDifficulty(c.Difficulty)
}

func (c Config) LogrusLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return logrus.WarnLevel, cerr.ErrInvalidLogLevel(c.LogLevel, err)
	}
	return level, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
