// Package simulation advances a kickoff match one fixed tick at a time. It
// owns every mutation of the ball, the agents and the match state and has no
// dependency on ebitengine, so it runs headless.
package simulation

import (
	"github.com/automoto/kickoff/archetypes"
	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/shared/pitchdata"
	"github.com/automoto/kickoff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// cellSize is the resolv broad phase cell edge in pixels.
const cellSize = 20

// Settings is everything needed to set up a match world.
type Settings struct {
	Layout           pitchdata.Layout
	Ball             cfg.BallConfig
	Player           cfg.AgentConfig
	Opponent         cfg.AgentConfig
	Rules            cfg.RulesConfig
	DurationTicks    int
	TickDuration     float64
	LeaderboardLimit int
	KickInterval     int
	HighScore        int
	Muted            bool
}

// SettingsFromConfig builds Settings from the global tuning values.
func SettingsFromConfig(layout pitchdata.Layout) Settings {
	return Settings{
		Layout:           layout,
		Ball:             cfg.Ball,
		Player:           cfg.Player,
		Opponent:         cfg.Opponent,
		Rules:            cfg.Rules,
		DurationTicks:    cfg.Match.DurationTicks(cfg.C.TPS),
		TickDuration:     cfg.C.TickDuration(),
		LeaderboardLimit: cfg.Match.LeaderboardLimit,
		KickInterval:     cfg.Audio.KickCooldown,
		Muted:            cfg.Audio.Muted,
	}
}

// NewWorld returns a fresh world populated for a match.
func NewWorld(s Settings) donburi.World {
	w := donburi.NewWorld()
	Populate(w, s)
	return w
}

// Populate spawns the field, the match singleton, the ball, both agents and
// the broad phase space into w.
func Populate(w donburi.World, s Settings) {
	l := s.Layout

	field := archetypes.Field.Spawn(w)
	components.Field.SetValue(field, components.FieldData{Layout: l})

	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State:         cfg.MatchRunning,
		DurationTicks: s.DurationTicks,
		TickDuration:  s.TickDuration,
		HighScore:     s.HighScore,
	})
	components.Rules.SetValue(match, components.RulesData{
		RulesConfig:      s.Rules,
		LeaderboardLimit: s.LeaderboardLimit,
	})
	components.Audio.SetValue(match, components.AudioData{
		Muted:        s.Muted,
		KickInterval: s.KickInterval,
	})

	space := resolv.NewSpace(int(l.Width), int(l.Height), cellSize, cellSize)
	spaceEntry := archetypes.Space.Spawn(w)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	ball := archetypes.Ball.Spawn(w)
	components.Ball.SetValue(ball, components.BallData{
		X:        l.BallKickoff.X,
		Y:        l.BallKickoff.Y,
		Radius:   s.Ball.Radius,
		Friction: s.Ball.Friction,
		MaxSpeed: s.Ball.MaxSpeed,
		Color:    s.Ball.Color,
		Kickoff:  dmath.Vec2{X: l.BallKickoff.X, Y: l.BallKickoff.Y},
	})
	attachBody(space, ball, l.BallKickoff, s.Ball.Radius, tags.ResolvBall)

	spawnAgent(w, space, archetypes.Player, s.Player, l.PlayerKickoff, tags.ResolvPlayer)
	spawnAgent(w, space, archetypes.Opponent, s.Opponent, l.OpponentKickoff, tags.ResolvOpponent)
}

type spawner interface {
	Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry
}

func spawnAgent(w donburi.World, space *resolv.Space, a spawner, c cfg.AgentConfig, at pitchdata.Spot, tag string) *donburi.Entry {
	e := a.Spawn(w)
	components.Agent.SetValue(e, components.AgentData{
		X:       at.X,
		Y:       at.Y,
		Radius:  c.Radius,
		Speed:   c.Speed,
		Color:   c.Color,
		Label:   c.Label,
		Kickoff: dmath.Vec2{X: at.X, Y: at.Y},
	})
	attachBody(space, e, at, c.Radius, tags.ResolvAgent, tag)
	return e
}

// attachBody registers a padded bounding square for a circle of radius r at spot.
func attachBody(space *resolv.Space, e *donburi.Entry, at pitchdata.Spot, r float64, resolvTags ...string) {
	obj := newBody(at.X, at.Y, r, resolvTags...)
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
