package components

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BallData is the ball's kinematic state and tuning.
type BallData struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	Friction       float64
	MaxSpeed       float64
	Color          color.RGBA
	Kickoff        dmath.Vec2
}

var Ball = donburi.NewComponentType[BallData]()

// Speed returns the magnitude of the ball's velocity.
func (b *BallData) Speed() float64 {
	return math.Hypot(b.SpeedX, b.SpeedY)
}

// ResetToKickoff puts the ball back on its kickoff spot at rest.
func (b *BallData) ResetToKickoff() {
	b.X, b.Y = b.Kickoff.X, b.Kickoff.Y
	b.SpeedX, b.SpeedY = 0, 0
}
