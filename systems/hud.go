package systems

import (
	"fmt"

	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/automoto/kickoff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders both scores, the countdown clock and the high score.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := getMatch(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	face := fonts.HUD.Get()
	clr := cfg.HUD.TextColor
	top := cfg.HUD.TopY

	drawText(screen, fmt.Sprintf("%s: %d", agentLabel(e, true), match.PlayerScore), face,
		cfg.HUD.Margin, top, clr, text.AlignStart, text.AlignEnd)
	drawText(screen, fmt.Sprintf("%s: %d", agentLabel(e, false), match.OpponentScore), face,
		width-cfg.HUD.Margin, top, clr, text.AlignEnd, text.AlignEnd)
	drawText(screen, match.ClockText(), face,
		width/2, top, clr, text.AlignCenter, text.AlignEnd)
	drawText(screen, fmt.Sprintf("High Score: %d", match.HighScore), face,
		cfg.HUD.Margin, height-cfg.HUD.Margin, clr, text.AlignStart, text.AlignEnd)
}

func agentLabel(e *ecs.ECS, player bool) string {
	tag, fallback := tags.Opponent, cfg.Opponent.Label
	if player {
		tag, fallback = tags.Player, cfg.Player.Label
	}
	entry, ok := tag.First(e.World)
	if !ok {
		return fallback
	}
	return components.Agent.Get(entry).Label
}
