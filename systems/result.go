package systems

import (
	"fmt"

	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/automoto/kickoff/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMatchResult renders the full time overlay with the outcome.
func DrawMatchResult(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := getMatch(e)
	if !ok || match.State != cfg.MatchEnded {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	gap := cfg.Result.LineGap / 2

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Result.OverlayColor, false)
	drawText(screen, cfg.Result.Title, fonts.Title.Get(),
		width/2, height/2-gap, cfg.Result.TextColor, text.AlignCenter, text.AlignCenter)
	drawText(screen, fmt.Sprintf("%s %s", outcomeText(simulation.Result(match)), cfg.Result.Prompt), fonts.HUD.Get(),
		width/2, height/2+gap, cfg.Result.TextColor, text.AlignCenter, text.AlignCenter)
}

func outcomeText(o simulation.Outcome) string {
	switch o {
	case simulation.PlayerWin:
		return cfg.Result.WinText
	case simulation.OpponentWin:
		return cfg.Result.LoseText
	}
	return cfg.Result.DrawText
}
