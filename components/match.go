package components

import (
	"fmt"
	"math"

	cfg "github.com/automoto/kickoff/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State         cfg.MatchStateID
	PlayerScore   int
	OpponentScore int
	ElapsedTicks  int
	DurationTicks int
	TickDuration  float64 // seconds per tick
	HighScore     int     // best player score known at the last restart
}

var Match = donburi.NewComponentType[MatchData]()

// Elapsed returns the match time played, in seconds.
func (m *MatchData) Elapsed() float64 {
	return float64(m.ElapsedTicks) * m.TickDuration
}

// Remaining returns the match time left, in seconds. It never goes negative.
func (m *MatchData) Remaining() float64 {
	left := m.DurationTicks - m.ElapsedTicks
	if left < 0 {
		left = 0
	}
	return float64(left) * m.TickDuration
}

// ClockText formats the remaining time as m:ss, rounding up so the clock
// only reads 0:00 once the match is over.
func (m *MatchData) ClockText() string {
	// the epsilon absorbs float error in ticks*TickDuration on whole seconds
	secs := int(math.Ceil(m.Remaining() - 1e-9))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
