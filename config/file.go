package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every tuning validation failure.
var ErrInvalid = errors.New("invalid configuration")

type ballFile struct {
	Radius   float64 `toml:"radius"`
	Friction float64 `toml:"friction"`
	MaxSpeed float64 `toml:"max_speed"`
}

type agentFile struct {
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
}

type rulesFile struct {
	Restitution   float64 `toml:"restitution"`
	DribblePower  float64 `toml:"dribble_power"`
	ShootPower    float64 `toml:"shoot_power"`
	OpponentPower float64 `toml:"opponent_power"`
	PursuitBuffer float64 `toml:"pursuit_buffer"`
	RestSpeed     float64 `toml:"rest_speed"`
}

type matchFile struct {
	Duration         float64 `toml:"duration"`
	LeaderboardLimit int     `toml:"leaderboard_limit"`
}

type audioFile struct {
	SFXVolume float64 `toml:"sfx_volume"`
	Muted     bool    `toml:"muted"`
}

// tuningFile mirrors the subset of settings a TOML file may override.
type tuningFile struct {
	Ball     ballFile  `toml:"ball"`
	Player   agentFile `toml:"player"`
	Opponent agentFile `toml:"opponent"`
	Rules    rulesFile `toml:"rules"`
	Match    matchFile `toml:"match"`
	Audio    audioFile `toml:"audio"`
}

// LoadFile overrides tuning values with those present in a TOML file. Keys
// missing from the file keep their current value.
func LoadFile(path string) error {
	f := tuningFile{
		Ball:     ballFile{Ball.Radius, Ball.Friction, Ball.MaxSpeed},
		Player:   agentFile{Player.Radius, Player.Speed},
		Opponent: agentFile{Opponent.Radius, Opponent.Speed},
		Rules: rulesFile{
			Rules.Restitution, Rules.DribblePower, Rules.ShootPower,
			Rules.OpponentPower, Rules.PursuitBuffer, Rules.RestSpeed,
		},
		Match: matchFile{Match.Duration, Match.LeaderboardLimit},
		Audio: audioFile{Audio.SFXVolume, Audio.Muted},
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Warning: ignoring unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	Ball.Radius, Ball.Friction, Ball.MaxSpeed = f.Ball.Radius, f.Ball.Friction, f.Ball.MaxSpeed
	Player.Radius, Player.Speed = f.Player.Radius, f.Player.Speed
	Opponent.Radius, Opponent.Speed = f.Opponent.Radius, f.Opponent.Speed
	Rules = RulesConfig{
		Restitution:   f.Rules.Restitution,
		DribblePower:  f.Rules.DribblePower,
		ShootPower:    f.Rules.ShootPower,
		OpponentPower: f.Rules.OpponentPower,
		PursuitBuffer: f.Rules.PursuitBuffer,
		RestSpeed:     f.Rules.RestSpeed,
	}
	Match.Duration, Match.LeaderboardLimit = f.Match.Duration, f.Match.LeaderboardLimit
	Audio.SFXVolume, Audio.Muted = f.Audio.SFXVolume, f.Audio.Muted

	return Validate()
}

// Validate checks the current tuning values.
func Validate() error {
	switch {
	case Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalid, Ball.Radius)
	case Ball.Friction <= 0 || Ball.Friction >= 1:
		return fmt.Errorf("%w: ball friction must be in (0, 1), got %v", ErrInvalid, Ball.Friction)
	case Ball.MaxSpeed <= 0:
		return fmt.Errorf("%w: ball max speed must be positive, got %v", ErrInvalid, Ball.MaxSpeed)
	case Player.Radius <= 0 || Player.Speed <= 0:
		return fmt.Errorf("%w: player radius and speed must be positive", ErrInvalid)
	case Opponent.Radius <= 0 || Opponent.Speed <= 0:
		return fmt.Errorf("%w: opponent radius and speed must be positive", ErrInvalid)
	case Rules.Restitution < 0 || Rules.Restitution > 1:
		return fmt.Errorf("%w: restitution must be in [0, 1], got %v", ErrInvalid, Rules.Restitution)
	case Rules.DribblePower < 0 || Rules.ShootPower < 0 || Rules.OpponentPower < 0:
		return fmt.Errorf("%w: kick powers must not be negative", ErrInvalid)
	case Rules.PursuitBuffer < 0 || Rules.RestSpeed < 0:
		return fmt.Errorf("%w: pursuit buffer and rest speed must not be negative", ErrInvalid)
	case Match.Duration <= 0:
		return fmt.Errorf("%w: match duration must be positive, got %v", ErrInvalid, Match.Duration)
	case Match.LeaderboardLimit <= 0:
		return fmt.Errorf("%w: leaderboard limit must be positive, got %d", ErrInvalid, Match.LeaderboardLimit)
	case Audio.SFXVolume < 0 || Audio.SFXVolume > 1:
		return fmt.Errorf("%w: sfx volume must be in [0, 1], got %v", ErrInvalid, Audio.SFXVolume)
	}
	return nil
}
