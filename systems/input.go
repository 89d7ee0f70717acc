package systems

import (
	cfg "github.com/automoto/kickoff/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps every action to the keys that trigger it.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionMoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionShoot:     {ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	cfg.ActionPause:     {ebiten.KeyP},
	cfg.ActionRestart:   {ebiten.KeyR},
	cfg.ActionMute:      {ebiten.KeyM},
	cfg.ActionDebug:     {ebiten.KeyF3},
}

// UpdateInput polls the keyboard into the input state.
// Must run BEFORE the match control and simulation systems.
func UpdateInput(e *ecs.ECS) {
	input, ok := getInput(e)
	if !ok {
		return
	}

	var current [cfg.ActionCount]bool
	for action, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				current[action] = true
				break
			}
		}
	}
	input.Advance(current)
}
