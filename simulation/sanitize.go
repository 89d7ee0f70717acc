package simulation

import (
	"log"

	"github.com/automoto/kickoff/components"
	"github.com/automoto/kickoff/shared/gamemath"
)

// sanitize puts any entity holding a NaN or infinite value back on its
// kickoff spot. The guarded normalisation should make this unreachable.
func (s *session) sanitize() {
	b := s.ball
	if !gamemath.Finite(b.X, b.Y, b.SpeedX, b.SpeedY) {
		log.Printf("Warning: ball state was not finite (%v, %v, %v, %v), resetting", b.X, b.Y, b.SpeedX, b.SpeedY)
		b.ResetToKickoff()
		syncBody(s.ballBody, b.X, b.Y, b.Radius)
	}
	if resetAgent(s.player, "player") {
		syncBody(s.playerBody, s.player.X, s.player.Y, s.player.Radius)
	}
	if resetAgent(s.opponent, "opponent") {
		syncBody(s.opponentBody, s.opponent.X, s.opponent.Y, s.opponent.Radius)
	}
}

func resetAgent(a *components.AgentData, name string) bool {
	if gamemath.Finite(a.X, a.Y) {
		return false
	}
	log.Printf("Warning: %s position was not finite (%v, %v), resetting", name, a.X, a.Y)
	a.ResetToKickoff()
	return true
}
