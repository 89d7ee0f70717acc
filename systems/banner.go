package systems

import (
	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/automoto/kickoff/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner advances the goal/full time banner fade by one tick. It keeps
// running while paused so a banner never freezes on screen.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	simulation.AdvanceBanner(components.Banner.Get(entry), float32(cfg.C.TickDuration()))
}

func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	b := components.Banner.Get(entry)
	if !b.Active() || b.Alpha <= 0 {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())*0.3)
	op.ColorScale.ScaleWithColor(cfg.Banner.TextColor)
	op.ColorScale.ScaleAlpha(b.Alpha)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.Text, fonts.Banner.Get(), op)
}
