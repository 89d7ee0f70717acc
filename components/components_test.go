package components

import (
	"testing"

	cfg "github.com/automoto/kickoff/config"
)

func TestClockText(t *testing.T) {
	cases := []struct {
		elapsed int
		want    string
	}{
		{0, "1:30"},
		{1, "1:30"},
		{59, "1:30"},
		{60, "1:29"},
		{61, "1:29"},
		{3600, "0:30"},
		{5399, "0:01"},
		{5400, "0:00"},
		{6000, "0:00"},
	}
	for _, tc := range cases {
		m := MatchData{ElapsedTicks: tc.elapsed, DurationTicks: 5400, TickDuration: 1.0 / 60}
		if got := m.ClockText(); got != tc.want {
			t.Errorf("elapsed %d: ClockText = %q, want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestElapsed(t *testing.T) {
	m := MatchData{ElapsedTicks: 90, DurationTicks: 5400, TickDuration: 1.0 / 60}
	if got := m.Elapsed(); got < 1.5-1e-9 || got > 1.5+1e-9 {
		t.Fatalf("Elapsed = %v, want 1.5", got)
	}
}

func TestInputEdges(t *testing.T) {
	var in InputData
	var held [cfg.ActionCount]bool
	held[cfg.ActionPause] = true

	in.Advance(held)
	if s := in.Action(cfg.ActionPause); !s.Pressed || !s.JustPressed {
		t.Fatalf("first frame = %+v, want pressed and just pressed", s)
	}

	in.Advance(held)
	if s := in.Action(cfg.ActionPause); !s.Pressed || s.JustPressed {
		t.Fatalf("held frame = %+v, want pressed only", s)
	}

	in.Advance([cfg.ActionCount]bool{})
	if s := in.Action(cfg.ActionPause); s.Pressed || !s.JustReleased {
		t.Fatalf("release frame = %+v, want just released", s)
	}
}

func TestBallResetToKickoff(t *testing.T) {
	b := BallData{X: 1, Y: 2, SpeedX: 3, SpeedY: 4}
	b.Kickoff.X, b.Kickoff.Y = 480, 270
	b.ResetToKickoff()
	if b.X != 480 || b.Y != 270 || b.Speed() != 0 {
		t.Fatalf("ball = %+v", b)
	}
}
