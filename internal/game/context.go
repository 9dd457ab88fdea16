package game

import (
	"math/rand/v2"
	"time"

	"github.com/appengine-ltd/stop-it/internal/leaderboard"
)

// Settings are the fixed rules of a session.
type Settings struct {
	ThemeCount      int
	MaxAnswerLength int
	RoundDuration   time.Duration
	PointsPerTheme  int
	NoticeDuration  time.Duration
	LeaderboardSize int
}

func DefaultSettings() Settings {
	return Settings{
		ThemeCount:      DefaultThemeCount,
		MaxAnswerLength: MaxAnswerLength,
		RoundDuration:   DefaultRoundDuration,
		PointsPerTheme:  DefaultPointsPerTheme,
		NoticeDuration:  3 * time.Second,
		LeaderboardSize: 5,
	}
}

// RoundResult is the snapshot handed from Playing to Scoring.
type RoundResult struct {
	ID      string
	Letter  rune
	Themes  []string
	Answers []string
}

// GameContext is the state shared by the handlers. Only the running handler
// touches it.
type GameContext struct {
	Letter  rune
	Themes  []string
	Answers []string
	Letters LetterTable
	Board   *leaderboard.Board

	PlayerName string
	Settings   Settings
	LastScore  *ScoreCard

	rng     *rand.Rand
	pending *RoundResult
	fatal   error
}

func NewGameContext(settings Settings, letters LetterTable, board *leaderboard.Board, rng *rand.Rand) *GameContext {
	if board == nil {
		board = leaderboard.New()
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	return &GameContext{
		Letters:    letters,
		Board:      board,
		PlayerName: "Player",
		Settings:   settings,
		rng:        rng,
	}
}

func (gc *GameContext) finishRound(result RoundResult) {
	gc.Letter = result.Letter
	gc.Themes = result.Themes
	gc.Answers = result.Answers
	gc.pending = &result
}

// TakeResult returns the pending round result and clears it.
func (gc *GameContext) TakeResult() (RoundResult, bool) {
	if gc.pending == nil {
		return RoundResult{}, false
	}
	result := *gc.pending
	gc.pending = nil
	return result, true
}

// Fail records an error that ends the session with ExitFailure.
func (gc *GameContext) Fail(err error) {
	if gc.fatal == nil {
		gc.fatal = err
	}
}

func (gc *GameContext) Err() error {
	return gc.fatal
}
