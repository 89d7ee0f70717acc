package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// AgentData is a circular mover that can kick the ball. The player and the
// opponent share it and are told apart by tags.
type AgentData struct {
	X, Y    float64
	Radius  float64
	Speed   float64 // pixels per tick
	Color   color.RGBA
	Label   string
	Kickoff dmath.Vec2
}

var Agent = donburi.NewComponentType[AgentData]()

// ResetToKickoff moves the agent back to its kickoff spot.
func (a *AgentData) ResetToKickoff() {
	a.X, a.Y = a.Kickoff.X, a.Kickoff.Y
}
