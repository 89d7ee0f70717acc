// Package cli builds the kickoff command line. The window itself is started
// by an injected runner so the commands stay free of any graphics dependency.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/persistence"
	"github.com/spf13/cobra"
)

// GameOptions is what the game runner receives once flags and config are
// applied.
type GameOptions struct {
	Store   persistence.Store
	Now     func() time.Time
	Scale   float64
	Buttons bool
	Debug   bool
}

type Deps struct {
	RunGame    func(opts GameOptions) error
	OpenStore  func(appName string) (persistence.Store, error)
	LoadConfig func(path string) error
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
}

// DefaultDeps wires the real config loader and gdata storage around runGame.
func DefaultDeps(runGame func(opts GameOptions) error) Deps {
	return Deps{
		RunGame: runGame,
		OpenStore: func(appName string) (persistence.Store, error) {
			return persistence.Open(appName)
		},
		LoadConfig: cfg.LoadFile,
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	var (
		configPath string
		duration   float64
		noSave     bool
		noButtons  bool
		scale      float64
		debug      bool
	)

	c := &cobra.Command{
		Use:          "kickoff",
		Short:        "One on one arcade football against the computer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, deps, configPath, duration); err != nil {
				return err
			}
			if scale <= 0 {
				return fmt.Errorf("%w: scale must be positive, got %v", cfg.ErrInvalid, scale)
			}

			var store persistence.Store
			if noSave {
				store = persistence.NewMemoryStore()
			} else {
				store = openStoreOrMemory(deps)
			}

			return deps.RunGame(GameOptions{
				Store:   store,
				Now:     deps.Now,
				Scale:   scale,
				Buttons: cfg.Buttons.Enabled && !noButtons,
				Debug:   cfg.Debug.Enabled || debug,
			})
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "TOML file overriding tuning values")
	c.Flags().Float64VarP(&duration, "duration", "d", cfg.Match.Duration, "match length in seconds")
	c.Flags().BoolVar(&noSave, "no-save", false, "keep the high score and leaderboard in memory only")
	c.Flags().BoolVar(&noButtons, "no-buttons", false, "hide the on-screen Pause and Restart buttons")
	c.Flags().Float64VarP(&scale, "scale", "s", 1, "window scale factor")
	c.Flags().BoolVar(&debug, "debug", false, "start with the collision overlay shown")

	c.AddCommand(newLeaderboardCmd(deps))

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

// applyConfig loads the tuning file, then lets an explicit --duration win.
func applyConfig(cmd *cobra.Command, deps Deps, path string, duration float64) error {
	if path != "" {
		if err := deps.LoadConfig(path); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("duration") {
		cfg.Match.Duration = duration
	}
	return cfg.Validate()
}

// openStoreOrMemory falls back to an in-memory store so a broken data
// directory never stops a match from being played.
func openStoreOrMemory(deps Deps) persistence.Store {
	store, err := deps.OpenStore(cfg.Match.AppName)
	if err != nil {
		log.Printf("Warning: Could not open persistence, scores will not be saved: %v", err)
		return persistence.NewMemoryStore()
	}
	return store
}
