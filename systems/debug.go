package systems

import (
	"fmt"

	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broad phase body and the cells it occupies.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).Enabled {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	cw, ch := float32(space.CellWidth), float32(space.CellHeight)

	objects := space.Objects()
	for _, obj := range objects {
		for _, cell := range obj.TouchingCells {
			vector.FillRect(screen, float32(cell.X)*cw, float32(cell.Y)*ch, cw, ch, cfg.Debug.CellColor, false)
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, cfg.Debug.BodyColor, false)
	}

	elapsed := 0.0
	if m, ok := getMatch(e); ok {
		elapsed = m.Elapsed()
	}
	label := fmt.Sprintf("bodies: %d  t: %.1fs  tps: %.0f  fps: %.0f",
		len(objects), elapsed, ebiten.ActualTPS(), ebiten.ActualFPS())
	drawText(screen, label, fonts.Small.Get(), cfg.HUD.Margin, 48, cfg.Debug.BodyColor, text.AlignStart, text.AlignStart)
}
