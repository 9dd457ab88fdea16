package game

// RoundState is the screen the machine is currently running.
type RoundState int

const (
	StateMenu RoundState = iota
	StatePlaying
	StateScoring
	StateLeaderboard
	StateOptions
	StateExit
)

func (s RoundState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateScoring:
		return "scoring"
	case StateLeaderboard:
		return "leaderboard"
	case StateOptions:
		return "options"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ExitCode is the process status returned by Machine.Run.
type ExitCode int

const (
	ExitOK      ExitCode = 0
	ExitFailure ExitCode = 1
)
