package gui

import (
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/stop-it/internal/game"
)

type keyBinding struct {
	raylib int32
	key    game.Key
	repeat bool
}

var keyBindings = []keyBinding{
	{raylib: rl.KeyUp, key: game.KeyUp},
	{raylib: rl.KeyDown, key: game.KeyDown},
	{raylib: rl.KeyLeft, key: game.KeyLeft},
	{raylib: rl.KeyRight, key: game.KeyRight},
	{raylib: rl.KeyEnter, key: game.KeyEnter},
	{raylib: rl.KeyKpEnter, key: game.KeyEnter},
	{raylib: rl.KeyEscape, key: game.KeyEscape},
	{raylib: rl.KeyTab, key: game.KeyTab},
	{raylib: rl.KeyBackspace, key: game.KeyBackspace, repeat: true},
}

// acceptChar reports whether a typed character belongs in an answer.
func acceptChar(ch int32) bool {
	r := rune(ch)
	return r >= ' ' && r != unicode.ReplacementChar && unicode.IsPrint(r)
}

// frameLatch hands out raylib's key state once per drawn frame. IsKeyPressed
// only resets at EndDrawing, so a second poll in the same frame would report
// the same press to whichever state runs next.
type frameLatch struct {
	taken bool
}

// take reports whether key state may be read, and marks it read.
func (l *frameLatch) take() bool {
	if l.taken {
		return false
	}
	l.taken = true
	return true
}

func (l *frameLatch) release() {
	l.taken = false
}
