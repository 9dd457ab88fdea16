package game

import "github.com/appengine-ltd/stop-it/internal/leaderboard"

// View is what the active state asks the frontend to draw for one frame.
type View interface {
	isView()
}

type MenuView struct {
	Items  []string
	Cursor int
}

type NoticeView struct {
	Title  string
	Detail string
}

type LoadingView struct {
	Message string
}

type PlayingView struct {
	Letter      rune
	Slots       []InputSlot
	Active      int
	SecondsLeft int
	MaxLength   int
}

type ScoringView struct {
	Card ScoreCard
}

type LeaderboardView struct {
	Entries []leaderboard.Entry
}

type OptionsView struct {
	Letters LetterTable
	Cursor  int
	Columns int
}

func (MenuView) isView()        {}
func (NoticeView) isView()      {}
func (LoadingView) isView()     {}
func (PlayingView) isView()     {}
func (ScoringView) isView()     {}
func (LeaderboardView) isView() {}
func (OptionsView) isView()     {}
