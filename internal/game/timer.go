package game

import "time"

// DefaultRoundDuration is how long players have to fill the ring.
const DefaultRoundDuration = 60 * time.Second

// Timer counts a round down from a fixed duration. It cannot be paused.
type Timer struct {
	start    time.Time
	duration time.Duration
}

func StartTimer(now time.Time, duration time.Duration) Timer {
	return Timer{start: now, duration: duration}
}

func (t Timer) Duration() time.Duration {
	return t.duration
}

func (t Timer) Remaining(now time.Time) time.Duration {
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := t.duration - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t Timer) Expired(now time.Time) bool {
	return now.Sub(t.start) >= t.duration
}

// SecondsLeft is the whole number of seconds shown on the round clock.
func (t Timer) SecondsLeft(now time.Time) int {
	return int(t.Remaining(now) / time.Second)
}
