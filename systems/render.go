package systems

import (
	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawField paints the grass and the pitch markings.
func DrawField(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := getField(e)
	if !ok {
		return
	}

	w, h := float32(f.Width), float32(f.Height)
	inset := float32(f.LineInset)
	lw := cfg.Pitch.LineWidth
	line := cfg.Pitch.LineColor

	vector.FillRect(screen, 0, 0, w, h, cfg.Pitch.GrassColor, false)

	vector.StrokeRect(screen, inset, inset, w-2*inset, h-2*inset, lw, line, false)
	vector.StrokeLine(screen, w/2, inset, w/2, h-inset, lw, line, false)
	vector.StrokeCircle(screen, w/2, h/2, float32(f.CenterCircleRadius), lw, line, true)

	goalTop := float32(f.GoalTop())
	depth, mouth := float32(f.GoalDepth), float32(f.GoalWidth)
	vector.FillRect(screen, 0, goalTop, depth, mouth, cfg.Pitch.GoalColor, false)
	vector.FillRect(screen, w-depth, goalTop, depth, mouth, cfg.Pitch.GoalColor, false)

	pw, ph := float32(f.PenaltyWidth), float32(f.PenaltyHeight)
	vector.StrokeRect(screen, inset, h/2-ph/2, pw, ph, lw, line, false)
	vector.StrokeRect(screen, w-inset-pw, h/2-ph/2, pw, ph, lw, line, false)
}

// DrawEntities draws both agents and then the ball on top.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	components.Agent.Each(e.World, func(entry *donburi.Entry) {
		a := components.Agent.Get(entry)
		vector.FillCircle(screen, float32(a.X), float32(a.Y), float32(a.Radius), a.Color, true)
	})

	if entry, ok := tags.Ball.First(e.World); ok {
		b := components.Ball.Get(entry)
		vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), b.Color, true)
	}
}
