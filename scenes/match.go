package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/kickoff/assets"
	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/persistence"
	"github.com/automoto/kickoff/simulation"
	"github.com/automoto/kickoff/systems"
	"github.com/automoto/kickoff/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// MatchOptions are the collaborators a match scene needs from the caller.
type MatchOptions struct {
	Store   persistence.Store
	Now     func() time.Time
	Buttons bool
	Debug   bool
}

// MatchScene runs a single player vs opponent match, restartable forever.
type MatchScene struct {
	ecs      *ecs.ECS
	opts     MatchOptions
	controls *ui.MatchControls
	once     sync.Once
}

func NewMatchScene(opts MatchOptions) *MatchScene {
	if opts.Store == nil {
		opts.Store = persistence.NewMemoryStore()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &MatchScene{opts: opts}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	if ms.controls != nil {
		ms.controls.Update()
	}
	ms.ecs.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	if ms.controls != nil {
		ms.controls.Draw(screen)
	}
}

func (ms *MatchScene) configure() {
	systems.PreloadAudio()

	layout := assets.LoadPitch(cfg.Pitch.MapPath, float64(cfg.C.Width), float64(cfg.C.Height))
	settings := simulation.SettingsFromConfig(layout)
	settings.HighScore = ms.opts.Store.HighScore()

	e := ecs.NewECS(donburi.NewWorld())
	simulation.Populate(e.World, settings)
	if entry, ok := components.Debug.First(e.World); ok {
		components.Debug.Get(entry).Enabled = ms.opts.Debug
	}

	control := systems.NewMatchControl(ms.opts.Store, ms.opts.Now)

	// Input and the state machine run every tick, even when paused
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(control.Update)

	e.AddSystem(systems.WithRunningCheck(systems.UpdateSimulation))

	e.AddSystem(systems.UpdateBanner)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(layerDefault, systems.DrawField)
	e.AddRenderer(layerDefault, systems.DrawEntities)
	e.AddRenderer(layerDefault, systems.DrawDebug)
	e.AddRenderer(layerDefault, systems.DrawHUD)
	e.AddRenderer(layerDefault, systems.DrawBanner)
	e.AddRenderer(layerDefault, systems.DrawPause)
	e.AddRenderer(layerDefault, systems.DrawMatchResult)

	ms.ecs = e

	if ms.opts.Buttons {
		controls, err := ui.NewMatchControls(
			func() { control.TogglePause(ms.ecs) },
			func() { control.Restart(ms.ecs) },
		)
		if err != nil {
			log.Printf("Warning: Could not build match buttons: %v", err)
			return
		}
		ms.controls = controls
	}
}
