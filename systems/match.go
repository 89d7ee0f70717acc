package systems

import (
	"log"
	"time"

	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/persistence"
	"github.com/automoto/kickoff/simulation"
	"github.com/yohamta/donburi/ecs"
)

// MatchControl applies the pause and restart transitions. The keyboard and
// the on-screen buttons both go through it.
type MatchControl struct {
	store persistence.Store
	now   func() time.Time
}

func NewMatchControl(store persistence.Store, now func() time.Time) *MatchControl {
	return &MatchControl{store: store, now: now}
}

// Update handles the restart, pause, mute and debug keys on their press edge.
func (c *MatchControl) Update(e *ecs.ECS) {
	input, ok := getInput(e)
	if !ok {
		return
	}

	if input.Action(cfg.ActionRestart).JustPressed {
		c.Restart(e)
		return
	}
	if input.Action(cfg.ActionPause).JustPressed {
		c.TogglePause(e)
	}
	if input.Action(cfg.ActionMute).JustPressed {
		if audio, ok := getAudio(e); ok {
			audio.Muted = !audio.Muted
		}
	}
	if input.Action(cfg.ActionDebug).JustPressed {
		if entry, ok := components.Debug.First(e.World); ok {
			d := components.Debug.Get(entry)
			d.Enabled = !d.Enabled
		}
	}
}

func (c *MatchControl) TogglePause(e *ecs.ECS) {
	simulation.TogglePause(e.World)
}

// Restart saves the finished match and starts a new one. A failed save is
// logged and play continues.
func (c *MatchControl) Restart(e *ecs.ECS) {
	if err := simulation.Restart(e.World, c.store, c.now()); err != nil {
		log.Printf("Warning: Could not save match result: %v", err)
	}
}

// UpdateSimulation advances the match by one tick.
func UpdateSimulation(e *ecs.ECS) {
	simulation.Step(e.World)
}

// WithRunningCheck wraps a system to skip execution unless the match is running.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if m, ok := getMatch(e); !ok || m.State != cfg.MatchRunning {
			return
		}
		system(e)
	}
}
