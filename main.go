package main

import (
	"fmt"
	"os"

	"github.com/automoto/kickoff/cli"
	"github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/fonts"
	"github.com/automoto/kickoff/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts cli.GameOptions) *Game {
	return &Game{
		scene: scenes.NewMatchScene(scenes.MatchOptions{
			Store:   opts.Store,
			Now:     opts.Now,
			Buttons: opts.Buttons,
			Debug:   opts.Debug,
		}),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runGame(opts cli.GameOptions) error {
	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	ebiten.SetWindowSize(int(float64(config.C.Width)*opts.Scale), int(float64(config.C.Height)*opts.Scale))
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One Update per tick is the simulation's fixed time step
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(NewGame(opts))
}

func main() {
	root := cli.NewRootCmd(cli.DefaultDeps(runGame))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
