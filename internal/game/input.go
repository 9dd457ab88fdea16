package game

import "time"

type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
	EventText
)

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// InputEvent is one event drained from the frontend.
type InputEvent struct {
	Kind EventKind
	Key  Key
	Text string
}

func QuitEvent() InputEvent {
	return InputEvent{Kind: EventQuit}
}

func KeyEvent(k Key) InputEvent {
	return InputEvent{Kind: EventKey, Key: k}
}

func TextEvent(fragment string) InputEvent {
	return InputEvent{Kind: EventText, Text: fragment}
}

// Frontend is the window the machine draws to and reads input from.
// PollInput must not block and returns every pending event. Handlers present
// a frame before their first poll, so a key that ends one state is not seen
// again by the next.
type Frontend interface {
	PollInput() []InputEvent
	Present(View)
	Now() time.Time
}
