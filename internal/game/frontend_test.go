package game

import (
	"context"
	"errors"
	"time"
)

// scriptedFrontend replays one batch of events per poll and advances its
// clock by step each time. Once the script runs out it reports Quit.
type scriptedFrontend struct {
	now    time.Time
	step   time.Duration
	frames [][]InputEvent
	polls  int
	views  []View
}

func newScriptedFrontend(step time.Duration, frames ...[]InputEvent) *scriptedFrontend {
	return &scriptedFrontend{
		now:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		step:   step,
		frames: frames,
	}
}

func (f *scriptedFrontend) PollInput() []InputEvent {
	f.now = f.now.Add(f.step)
	if f.polls >= len(f.frames) {
		f.polls++
		return []InputEvent{QuitEvent()}
	}
	events := f.frames[f.polls]
	f.polls++
	return events
}

func (f *scriptedFrontend) Present(v View) {
	f.views = append(f.views, v)
}

func (f *scriptedFrontend) Now() time.Time {
	return f.now
}

// latchedFrontend behaves like the raylib window: the key state of a frame
// stays readable until the next Present, so every poll in between sees the
// same batch again. A handler that polls past maxRepeats without drawing gets
// Quit instead of spinning forever.
type latchedFrontend struct {
	*scriptedFrontend
	current []InputEvent
	latched bool
	repeats int
}

const maxRepeats = 16

func newLatchedFrontend(step time.Duration, frames ...[]InputEvent) *latchedFrontend {
	return &latchedFrontend{scriptedFrontend: newScriptedFrontend(step, frames...)}
}

func (f *latchedFrontend) PollInput() []InputEvent {
	if f.latched {
		f.repeats++
		if f.repeats > maxRepeats {
			return []InputEvent{QuitEvent()}
		}
		return f.current
	}
	f.current = f.scriptedFrontend.PollInput()
	f.latched = true
	return f.current
}

func (f *latchedFrontend) Present(v View) {
	f.scriptedFrontend.Present(v)
	f.latched = false
	f.repeats = 0
}

func (f *scriptedFrontend) notices() []NoticeView {
	var out []NoticeView
	for _, v := range f.views {
		if n, ok := v.(NoticeView); ok {
			out = append(out, n)
		}
	}
	return out
}

func keys(ks ...Key) []InputEvent {
	events := make([]InputEvent, len(ks))
	for i, k := range ks {
		events[i] = KeyEvent(k)
	}
	return events
}

func idle(n int) [][]InputEvent {
	return make([][]InputEvent, n)
}

func script(parts ...[][]InputEvent) [][]InputEvent {
	var out [][]InputEvent
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func frame(events ...InputEvent) [][]InputEvent {
	return [][]InputEvent{events}
}

type fakeProvider struct {
	themes      string
	themesErr   error
	verdicts    string
	verdictsErr error

	themeCalls    int
	validateCalls int
	lastLetter    rune
	lastPairs     []AnswerPair
}

func (p *fakeProvider) GenerateThemes(_ context.Context, letter rune, _ int) (string, error) {
	p.themeCalls++
	p.lastLetter = letter
	return p.themes, p.themesErr
}

func (p *fakeProvider) ValidateAnswers(_ context.Context, letter rune, pairs []AnswerPair) (string, error) {
	p.validateCalls++
	p.lastLetter = letter
	p.lastPairs = pairs
	return p.verdicts, p.verdictsErr
}

var errServiceDown = errors.New("service down")
