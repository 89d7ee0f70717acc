package systems

import (
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := getMatch(e)
	if !ok || match.State != cfg.MatchPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)
	drawText(screen, cfg.Pause.Text, fonts.Title.Get(),
		width/2, height/2, cfg.Pause.TextColor, text.AlignCenter, text.AlignCenter)
}
