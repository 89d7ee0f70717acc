package config

// MatchStateID is the match state machine's current state.
type MatchStateID int

const (
	MatchRunning MatchStateID = iota
	MatchPaused
	MatchEnded
)

func (s MatchStateID) String() string {
	switch s {
	case MatchRunning:
		return "running"
	case MatchPaused:
		return "paused"
	case MatchEnded:
		return "ended"
	}
	return "unknown"
}
