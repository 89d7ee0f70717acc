package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// snapshot restores the tuning globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	ball, player, opponent, rules, match, audio := Ball, Player, Opponent, Rules, Match, Audio
	t.Cleanup(func() {
		Ball, Player, Opponent, Rules, Match, Audio = ball, player, opponent, rules, match, audio
	})
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kickoff.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := Match.DurationTicks(C.TPS); got != 5400 {
		t.Fatalf("DurationTicks = %d, want 5400", got)
	}
}

func TestLoadFileOverridesOnlyPresentKeys(t *testing.T) {
	snapshot(t)
	path := writeFile(t, `
[ball]
friction = 0.95

[opponent]
speed = 3.5

[match]
duration = 45
`)

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Ball.Friction != 0.95 {
		t.Fatalf("Ball.Friction = %v, want 0.95", Ball.Friction)
	}
	if Ball.MaxSpeed != 12 {
		t.Fatalf("Ball.MaxSpeed = %v, want untouched 12", Ball.MaxSpeed)
	}
	if Opponent.Speed != 3.5 || Opponent.Radius != 20 {
		t.Fatalf("Opponent = %+v", Opponent)
	}
	if Match.Duration != 45 || Match.LeaderboardLimit != 50 {
		t.Fatalf("Match = %+v", Match)
	}
}

func TestLoadFileRejectsInvalidFriction(t *testing.T) {
	snapshot(t)
	path := writeFile(t, "[ball]\nfriction = 1.5\n")

	if err := LoadFile(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	snapshot(t)
	path := writeFile(t, "[ball\nfriction = ")

	if err := LoadFile(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestStringers(t *testing.T) {
	if ActionShoot.String() != "shoot" {
		t.Fatalf("ActionShoot = %q", ActionShoot.String())
	}
	if MatchEnded.String() != "ended" {
		t.Fatalf("MatchEnded = %q", MatchEnded.String())
	}
}
