package simulation

import (
	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/shared/gamemath"
)

// Controls is the per-tick snapshot of the player's held keys.
type Controls struct {
	Up, Down, Left, Right bool
	Shoot                 bool
}

// ControlsFrom reads the movement and shoot actions from the input state.
func ControlsFrom(in *components.InputData) Controls {
	return Controls{
		Up:    in.Current[cfg.ActionMoveUp],
		Down:  in.Current[cfg.ActionMoveDown],
		Left:  in.Current[cfg.ActionMoveLeft],
		Right: in.Current[cfg.ActionMoveRight],
		Shoot: in.Current[cfg.ActionShoot],
	}
}

// MovePlayer moves the agent by its speed along every held direction. The
// axes are independent. A move that would leave the field is not refused
// outright: the agent stops flush with the edge, so it can always reach the
// wall even when its speed does not divide the remaining gap.
func MovePlayer(a *components.AgentData, c Controls, f *components.FieldData) {
	if c.Up {
		a.Y -= a.Speed
	}
	if c.Down {
		a.Y += a.Speed
	}
	if c.Left {
		a.X -= a.Speed
	}
	if c.Right {
		a.X += a.Speed
	}
	a.X, a.Y = gamemath.ClampCircle(a.X, a.Y, a.Radius, f.Width, f.Height)
}

// PursueBall steps the agent straight at the ball unless it is already
// within buffer of touching it, then keeps it inside the field.
func PursueBall(a *components.AgentData, b *components.BallData, f *components.FieldData, buffer float64) {
	dirX, dirY, dist, ok := gamemath.Direction(a.X, a.Y, b.X, b.Y)
	if ok && dist > a.Radius+b.Radius+buffer {
		a.X += dirX * a.Speed
		a.Y += dirY * a.Speed
	}
	a.X, a.Y = gamemath.ClampCircle(a.X, a.Y, a.Radius, f.Width, f.Height)
}

// Kick adds an impulse of the given power to the ball, directed from the
// agent's centre to the ball's, if the two circles overlap. Nothing happens
// when the centres coincide. It reports whether an impulse was applied.
func Kick(a *components.AgentData, b *components.BallData, power float64) bool {
	dirX, dirY, dist, ok := gamemath.Direction(a.X, a.Y, b.X, b.Y)
	if !ok || dist >= a.Radius+b.Radius {
		return false
	}
	b.SpeedX += dirX * power
	b.SpeedY += dirY * power
	return true
}
