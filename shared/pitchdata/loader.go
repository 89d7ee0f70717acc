package pitchdata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/lafriks/go-tiled"
)

// Object names recognised in the "Pitch" object group.
const (
	ObjectGoalLeft        = "goal-left"
	ObjectGoalRight       = "goal-right"
	ObjectPenaltyLeft     = "penalty-left"
	ObjectCenterCircle    = "centre-circle"
	ObjectKickoffPlayer   = "kickoff-player"
	ObjectKickoffOpponent = "kickoff-opponent"
	ObjectKickoffBall     = "kickoff-ball"

	pitchGroup = "Pitch"
)

// ErrInvalidLayout is wrapped by every geometry validation failure.
var ErrInvalidLayout = errors.New("invalid pitch layout")

// alignTolerance is how far (in pixels) an authored goal may sit from the
// vertical centre before the map is rejected.
const alignTolerance = 0.5

// DefaultLayout returns the standard pitch for a width x height field.
func DefaultLayout(width, height float64) Layout {
	return Layout{
		Width:              width,
		Height:             height,
		GoalWidth:          120,
		GoalDepth:          20,
		PenaltyWidth:       300,
		PenaltyHeight:      150,
		CenterCircleRadius: 80,
		LineInset:          10,
		PlayerKickoff:      Spot{X: width * 0.25, Y: height / 2},
		OpponentKickoff:    Spot{X: width * 0.75, Y: height / 2},
		BallKickoff:        Spot{X: width / 2, Y: height / 2},
	}
}

// LoadLayout parses a TMX pitch map. Markings the map does not define keep
// their DefaultLayout value for the map's pixel size. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	pitchMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := DefaultLayout(
		float64(pitchMap.Width*pitchMap.TileWidth),
		float64(pitchMap.Height*pitchMap.TileHeight),
	)
	// Properties is nil when the map has no <properties> block
	if pitchMap.Properties != nil {
		if inset := pitchMap.Properties.GetFloat("lineInset"); inset > 0 {
			layout.LineInset = inset
		}
	}

	var left, right *tiled.Object
	for _, og := range pitchMap.ObjectGroups {
		if og.Name != pitchGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case ObjectGoalLeft:
				left = o
			case ObjectGoalRight:
				right = o
			case ObjectPenaltyLeft:
				layout.PenaltyWidth = o.Width
				layout.PenaltyHeight = o.Height
			case ObjectCenterCircle:
				layout.CenterCircleRadius = o.Width / 2
			case ObjectKickoffPlayer:
				layout.PlayerKickoff = Spot{X: o.X, Y: o.Y}
			case ObjectKickoffOpponent:
				layout.OpponentKickoff = Spot{X: o.X, Y: o.Y}
			case ObjectKickoffBall:
				layout.BallKickoff = Spot{X: o.X, Y: o.Y}
			}
		}
	}

	if left != nil {
		if right != nil && (left.Width != right.Width || left.Height != right.Height) {
			return nil, fmt.Errorf("%s: %w: goals differ in size", tmxPath, ErrInvalidLayout)
		}
		for _, g := range []*tiled.Object{left, right} {
			if g == nil {
				continue
			}
			if math.Abs(g.Y+g.Height/2-layout.Height/2) > alignTolerance {
				return nil, fmt.Errorf("%s: %w: goal %q is not vertically centred", tmxPath, ErrInvalidLayout, g.Name)
			}
		}
		layout.GoalDepth = left.Width
		layout.GoalWidth = left.Height
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return &layout, nil
}

// Validate checks that the markings fit inside the pitch and that every
// kickoff spot is on it.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: non-positive size %vx%v", ErrInvalidLayout, l.Width, l.Height)
	case l.GoalWidth <= 0 || l.GoalWidth >= l.Height:
		return fmt.Errorf("%w: goal width %v out of range", ErrInvalidLayout, l.GoalWidth)
	case l.GoalDepth <= 0 || l.GoalDepth*2 >= l.Width:
		return fmt.Errorf("%w: goal depth %v out of range", ErrInvalidLayout, l.GoalDepth)
	case l.CenterCircleRadius < 0 || l.CenterCircleRadius*2 > l.Height:
		return fmt.Errorf("%w: centre circle radius %v out of range", ErrInvalidLayout, l.CenterCircleRadius)
	}
	for name, s := range map[string]Spot{
		ObjectKickoffPlayer:   l.PlayerKickoff,
		ObjectKickoffOpponent: l.OpponentKickoff,
		ObjectKickoffBall:     l.BallKickoff,
	} {
		if s.X < 0 || s.X > l.Width || s.Y < 0 || s.Y > l.Height {
			return fmt.Errorf("%w: %s (%v, %v) is off the pitch", ErrInvalidLayout, name, s.X, s.Y)
		}
	}
	return nil
}
