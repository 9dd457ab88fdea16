// Package gui is the raylib window the game is played in.
package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/stop-it/internal/game"
)

// Window implements game.Frontend on top of a raylib window. All methods must
// be called from the goroutine that opened it.
type Window struct {
	width   int32
	height  int32
	version string
	keys    frameLatch
}

// Open creates the window and configures the frame loop.
func Open(width, height int32, title string, version string) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	// Slightly soften text edges on scaled/default font rendering.
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)
	return &Window{width: width, height: height, version: version}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) Now() time.Time {
	return time.Now()
}

// PollInput returns the events raylib collected during the last frame. Key
// presses are reported to the first poll after each Present only.
func (w *Window) PollInput() []game.InputEvent {
	if rl.WindowShouldClose() {
		return []game.InputEvent{game.QuitEvent()}
	}
	var events []game.InputEvent
	if w.keys.take() {
		for _, binding := range keyBindings {
			if rl.IsKeyPressed(binding.raylib) || (binding.repeat && rl.IsKeyPressedRepeat(binding.raylib)) {
				events = append(events, game.KeyEvent(binding.key))
			}
		}
	}
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if acceptChar(ch) {
			events = append(events, game.TextEvent(string(rune(ch))))
		}
	}
	return events
}

// Present draws one frame for view.
func (w *Window) Present(view game.View) {
	w.width = int32(rl.GetScreenWidth())
	w.height = int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(colorBG)
	switch v := view.(type) {
	case game.MenuView:
		w.drawMenu(v)
	case game.NoticeView:
		w.drawNotice(v)
	case game.LoadingView:
		w.drawLoading(v)
	case game.PlayingView:
		w.drawPlaying(v)
	case game.ScoringView:
		w.drawScoring(v)
	case game.LeaderboardView:
		w.drawLeaderboard(v)
	case game.OptionsView:
		w.drawOptions(v)
	}
	rl.EndDrawing()
	w.keys.release()
}
