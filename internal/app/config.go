package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/stop-it/internal/ai"
)

const maxThemeCount = 12

// Config holds the session settings read from the environment and flags.
type Config struct {
	PlayerName      string        `env:"STOPIT_PLAYER_NAME" envDefault:"Player"`
	RoundDuration   time.Duration `env:"STOPIT_ROUND_DURATION" envDefault:"60s"`
	ThemeCount      int           `env:"STOPIT_THEME_COUNT" envDefault:"5"`
	DisabledLetters string        `env:"STOPIT_DISABLED_LETTERS"`
	Seed            int64         `env:"STOPIT_SEED" envDefault:"0"`
	LeaderboardDB   string        `env:"STOPIT_LEADERBOARD_DB"`
	SaveLeaderboard bool          `env:"STOPIT_SAVE_LEADERBOARD"`
	LogLevel        string        `env:"STOPIT_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint    string        `env:"STOPIT_OTEL_ENDPOINT"`

	AI ai.Config
}

// ParseConfig loads environment defaults into Config and then applies flags.
// It does not validate the result; callers run Validate once they know the
// game is going to start.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.PlayerName, "player", cfg.PlayerName, "Name credited on the leaderboard")
	fs.StringVar(&cfg.AI.Provider, "provider", cfg.AI.Provider, "Text service: auto, gemini or offline")
	fs.StringVar(&cfg.AI.Language, "lang", cfg.AI.Language, "Prompt language (en or pt-BR)")
	fs.DurationVar(&cfg.RoundDuration, "round", cfg.RoundDuration, "Round duration")
	fs.StringVar(&cfg.LeaderboardDB, "db", cfg.LeaderboardDB, "SQLite file for the leaderboard")
	fs.BoolVar(&cfg.SaveLeaderboard, "save", cfg.SaveLeaderboard, "Keep the leaderboard in the user config dir when -db is not set")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.PlayerName = strings.TrimSpace(cfg.PlayerName)
	cfg.AI.Provider = ai.NormalizeProvider(cfg.AI.Provider)
	return cfg, nil
}

// Validate reports the first setting the game cannot start with.
func (c Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.PlayerName == "" {
		return errors.New("player name is required")
	}
	if c.RoundDuration <= 0 {
		return fmt.Errorf("round duration must be positive, got %s", c.RoundDuration)
	}
	if c.ThemeCount < 1 || c.ThemeCount > maxThemeCount {
		return fmt.Errorf("theme count must be between 1 and %d, got %d", maxThemeCount, c.ThemeCount)
	}
	if _, err := c.AI.ResolveProvider(); err != nil {
		return err
	}
	return nil
}
