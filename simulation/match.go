package simulation

import (
	"log"
	"time"

	"github.com/automoto/kickoff/components"
	cfg "github.com/automoto/kickoff/config"
	"github.com/automoto/kickoff/persistence"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Outcome is the result of a match as seen by the human player.
type Outcome int

const (
	Draw Outcome = iota
	PlayerWin
	OpponentWin
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "win"
	case OpponentWin:
		return "loss"
	}
	return "draw"
}

// Result compares the scores. It is derived for display and never stored.
func Result(m *components.MatchData) Outcome {
	return Compare(m.PlayerScore, m.OpponentScore)
}

// Compare returns the outcome of a player score against an opponent score.
func Compare(player, opponent int) Outcome {
	switch {
	case player > opponent:
		return PlayerWin
	case player < opponent:
		return OpponentWin
	}
	return Draw
}

// Step advances the match by one tick. Only a running match changes: the
// clock is checked first and the tick that reaches full time does no physics.
// Then the ball moves, the player moves and kicks, and the opponent chases
// and kicks, in that order.
func Step(w donburi.World) {
	s, ok := load(w)
	if !ok || s.match.State != cfg.MatchRunning {
		return
	}

	s.match.ElapsedTicks++
	if s.match.ElapsedTicks >= s.match.DurationTicks {
		s.match.ElapsedTicks = s.match.DurationTicks
		s.match.State = cfg.MatchEnded
		s.audio.Queue(cfg.SoundWhistle)
		announce(s.banner, cfg.Banner.FullTimeText)
		return
	}
	if s.audio.KickCooldown > 0 {
		s.audio.KickCooldown--
	}

	if goal := AdvanceBall(s.ball, s.field, s.rules); goal != GoalNone {
		s.score(goal)
	}
	syncBody(s.ballBody, s.ball.X, s.ball.Y, s.ball.Radius)

	controls := ControlsFrom(s.input)
	MovePlayer(s.player, controls, s.field)
	syncBody(s.playerBody, s.player.X, s.player.Y, s.player.Radius)
	power, sound := s.rules.DribblePower, cfg.SoundKick
	if controls.Shoot {
		power, sound = s.rules.ShootPower, cfg.SoundShot
	}
	if nearBall(s.playerBody) && Kick(s.player, s.ball, power) {
		s.audio.QueueContact(sound)
	}

	PursueBall(s.opponent, s.ball, s.field, s.rules.PursuitBuffer)
	syncBody(s.opponentBody, s.opponent.X, s.opponent.Y, s.opponent.Radius)
	if nearBall(s.opponentBody) && Kick(s.opponent, s.ball, s.rules.OpponentPower) {
		s.audio.QueueContact(cfg.SoundKick)
	}

	s.sanitize()
}

// score credits a goal and restarts play from the kickoff spots.
func (s *session) score(goal Goal) {
	switch goal {
	case GoalLeft:
		s.match.OpponentScore++
	case GoalRight:
		s.match.PlayerScore++
	default:
		return
	}
	s.kickoff()
	s.audio.Queue(cfg.SoundGoal)
	announce(s.banner, cfg.Banner.GoalText)
}

// TogglePause switches between Running and Paused and returns the new state.
// An ended match stays ended.
func TogglePause(w donburi.World) cfg.MatchStateID {
	s, ok := load(w)
	if !ok {
		return cfg.MatchEnded
	}
	switch s.match.State {
	case cfg.MatchRunning:
		s.match.State = cfg.MatchPaused
	case cfg.MatchPaused:
		s.match.State = cfg.MatchRunning
	}
	return s.match.State
}

// Restart records the finished scores and starts a new match from kickoff.
// It is allowed in every state. The in-memory reset always happens; a store
// write failure is returned for the caller to report.
func Restart(w donburi.World, store persistence.Store, at time.Time) error {
	s, ok := load(w)
	if !ok {
		return nil
	}

	m := s.match
	var err error
	if store != nil {
		err = persistence.Record(store, persistence.Entry{
			Score:    m.PlayerScore,
			Opponent: m.OpponentScore,
			At:       at.UTC(),
		}, s.rules.LeaderboardLimit)
	}
	if m.PlayerScore > m.HighScore {
		m.HighScore = m.PlayerScore
	}
	log.Printf("Match restarted after %d-%d (%s)", m.PlayerScore, m.OpponentScore, Result(m))

	m.PlayerScore, m.OpponentScore = 0, 0
	m.ElapsedTicks = 0
	m.State = cfg.MatchRunning
	s.input.Clear()
	s.banner.Sequence = nil
	s.banner.Alpha = 0
	s.kickoff()
	s.audio.Queue(cfg.SoundWhistle)
	return err
}

// announce starts a banner fade for text.
func announce(b *components.BannerData, text string) {
	b.Text = text
	b.Alpha = 0
	b.Sequence = gween.NewSequence(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)
}

// AdvanceBanner plays dt seconds of the banner fade.
func AdvanceBanner(b *components.BannerData, dt float32) {
	if b.Sequence == nil {
		return
	}
	alpha, _, done := b.Sequence.Update(dt)
	b.Alpha = alpha
	if done {
		b.Sequence = nil
		b.Alpha = 0
	}
}
