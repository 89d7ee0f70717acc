package simulation

import (
	"github.com/automoto/kickoff/components"
	"github.com/automoto/kickoff/shared/gamemath"
)

// Goal identifies which goal the ball entered on a tick.
type Goal int

const (
	GoalNone  Goal = iota
	GoalLeft       // the player's goal, the opponent scores
	GoalRight      // the opponent's goal, the player scores
)

// AdvanceBall applies one tick of friction, movement, wall bounces and the
// speed limit to the ball, then reports whether it is inside a goal.
func AdvanceBall(b *components.BallData, f *components.FieldData, rules *components.RulesData) Goal {
	b.SpeedX *= b.Friction
	b.SpeedY *= b.Friction
	if b.Speed() < rules.RestSpeed {
		b.SpeedX, b.SpeedY = 0, 0
	}

	b.X += b.SpeedX
	b.Y += b.SpeedY

	// Each axis bounces on its own, so a corner hit damps both components.
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.SpeedX *= -rules.Restitution
	} else if b.X+b.Radius > f.Width {
		b.X = f.Width - b.Radius
		b.SpeedX *= -rules.Restitution
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.SpeedY *= -rules.Restitution
	} else if b.Y+b.Radius > f.Height {
		b.Y = f.Height - b.Radius
		b.SpeedY *= -rules.Restitution
	}

	b.SpeedX, b.SpeedY = gamemath.ClampMagnitude(b.SpeedX, b.SpeedY, b.MaxSpeed)

	return GoalAt(b, f)
}

// GoalAt reports which goal, if any, the ball centre is inside.
func GoalAt(b *components.BallData, f *components.FieldData) Goal {
	if b.Y <= f.GoalTop() || b.Y >= f.GoalBottom() {
		return GoalNone
	}
	switch {
	case b.X < f.GoalDepth:
		return GoalLeft
	case b.X > f.Width-f.GoalDepth:
		return GoalRight
	}
	return GoalNone
}
