// Package app wires configuration, logging, telemetry, the text service and
// leaderboard storage around the game machine.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/appengine-ltd/stop-it/internal/ai"
	"github.com/appengine-ltd/stop-it/internal/game"
	"github.com/appengine-ltd/stop-it/internal/leaderboard"
	"github.com/appengine-ltd/stop-it/internal/logging"
	"github.com/appengine-ltd/stop-it/internal/storage/sqlite"
	"github.com/appengine-ltd/stop-it/internal/telemetry"
)

const (
	serviceName     = "stop-it"
	shutdownTimeout = 5 * time.Second
)

type App struct {
	cfg        Config
	version    string
	logOut     io.Writer
	httpClient *http.Client
}

type Option func(*App)

func WithVersion(version string) Option {
	return func(a *App) { a.version = version }
}

// WithLogOutput sends console logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) { a.logOut = w }
}

func WithHTTPClient(c *http.Client) Option {
	return func(a *App) { a.httpClient = c }
}

func NewApp(cfg Config, opts ...Option) *App {
	a := &App{cfg: cfg, version: "dev", logOut: os.Stderr}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run plays one session against fe until the player exits. The error is
// non-nil when setup fails, the leaderboard cannot be saved, or the machine
// stopped on a fatal error.
func (a *App) Run(ctx context.Context, fe game.Frontend) (game.ExitCode, error) {
	if err := a.cfg.Validate(); err != nil {
		return game.ExitFailure, err
	}
	log, err := logging.New(a.logOut, a.cfg.LogLevel)
	if err != nil {
		return game.ExitFailure, err
	}
	ctx = log.WithContext(ctx)

	shutdown, err := telemetry.Setup(ctx, serviceName, a.version, a.cfg.OTelEndpoint)
	if err != nil {
		return game.ExitFailure, fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	provider, providerName, err := ai.New(a.cfg.AI, seed, a.httpClient)
	if err != nil {
		return game.ExitFailure, fmt.Errorf("select text service: %w", err)
	}

	dbPath, err := a.leaderboardPath()
	if err != nil {
		return game.ExitFailure, err
	}
	board := leaderboard.New()
	defer board.Clear()
	var store *sqlite.Store
	if dbPath != "" {
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return game.ExitFailure, fmt.Errorf("open leaderboard: %w", err)
		}
		defer store.Close()
		entries, err := store.LoadLeaderboard(ctx)
		if err != nil {
			return game.ExitFailure, fmt.Errorf("load leaderboard: %w", err)
		}
		board.Restore(entries)
	}

	settings := game.DefaultSettings()
	settings.ThemeCount = a.cfg.ThemeCount
	settings.RoundDuration = a.cfg.RoundDuration

	gc := game.NewGameContext(settings, game.LettersExcept(a.cfg.DisabledLetters), board, game.NewRNG(seed))
	gc.PlayerName = a.cfg.PlayerName

	log.Info().
		Str("version", a.version).
		Str("provider", providerName).
		Str("player", gc.PlayerName).
		Int("leaderboard", board.Len()).
		Msg("session started")

	code := game.NewMachine(provider).Run(ctx, gc, fe)

	if store != nil {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := store.SaveLeaderboard(saveCtx, board.Entries()); err != nil {
			return game.ExitFailure, fmt.Errorf("save leaderboard: %w", err)
		}
	}
	if err := gc.Err(); err != nil {
		return code, fmt.Errorf("game loop: %w", err)
	}
	log.Info().Int("code", int(code)).Msg("session ended")
	return code, nil
}

// leaderboardPath is empty when the leaderboard lives only in memory.
func (a *App) leaderboardPath() (string, error) {
	if a.cfg.LeaderboardDB != "" {
		return a.cfg.LeaderboardDB, nil
	}
	if !a.cfg.SaveLeaderboard {
		return "", nil
	}
	path, err := sqlite.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("resolve leaderboard path: %w", err)
	}
	return path, nil
}
