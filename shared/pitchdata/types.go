// Package pitchdata provides the static pitch geometry, parsed from a TMX map.
// It holds plain data and loads it from Tiled maps.
package pitchdata

// Spot is a kickoff position in pitch coordinates.
type Spot struct {
	X, Y float64
}

// Layout holds the pitch dimensions and markings used by the simulation and
// the field renderer. Goals are always centred vertically and mirrored at
// both ends, so only one goal size is stored.
type Layout struct {
	Width, Height      float64
	GoalWidth          float64 // vertical opening of each goal
	GoalDepth          float64 // how far each goal reaches into the pitch
	PenaltyWidth       float64 // horizontal extent from the line inset
	PenaltyHeight      float64
	CenterCircleRadius float64
	LineInset          float64

	PlayerKickoff   Spot
	OpponentKickoff Spot
	BallKickoff     Spot
}

// GoalTop returns the upper edge of the goal opening.
func (l Layout) GoalTop() float64 {
	return l.Height/2 - l.GoalWidth/2
}

// GoalBottom returns the lower edge of the goal opening.
func (l Layout) GoalBottom() float64 {
	return l.Height/2 + l.GoalWidth/2
}
