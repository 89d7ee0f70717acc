package simulation

import (
	"github.com/automoto/kickoff/components"
	"github.com/automoto/kickoff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// session gathers the component pointers one tick works on.
type session struct {
	match  *components.MatchData
	rules  *components.RulesData
	input  *components.InputData
	audio  *components.AudioData
	banner *components.BannerData
	field  *components.FieldData

	ball     *components.BallData
	ballBody *resolv.Object

	player, opponent         *components.AgentData
	playerBody, opponentBody *resolv.Object
}

func load(w donburi.World) (*session, bool) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return nil, false
	}
	fieldEntry, ok := components.Field.First(w)
	if !ok {
		return nil, false
	}
	ballEntry, ok := tags.Ball.First(w)
	if !ok {
		return nil, false
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	opponentEntry, ok := tags.Opponent.First(w)
	if !ok {
		return nil, false
	}

	return &session{
		match:        components.Match.Get(matchEntry),
		rules:        components.Rules.Get(matchEntry),
		input:        components.Input.Get(matchEntry),
		audio:        components.Audio.Get(matchEntry),
		banner:       components.Banner.Get(matchEntry),
		field:        components.Field.Get(fieldEntry),
		ball:         components.Ball.Get(ballEntry),
		ballBody:     bodyOf(ballEntry),
		player:       components.Agent.Get(playerEntry),
		playerBody:   bodyOf(playerEntry),
		opponent:     components.Agent.Get(opponentEntry),
		opponentBody: bodyOf(opponentEntry),
	}, true
}

func bodyOf(e *donburi.Entry) *resolv.Object {
	if !e.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(e).Object
}

// kickoff returns the ball and both agents to their kickoff spots.
func (s *session) kickoff() {
	s.ball.ResetToKickoff()
	s.player.ResetToKickoff()
	s.opponent.ResetToKickoff()
	s.syncBodies()
}

func (s *session) syncBodies() {
	syncBody(s.ballBody, s.ball.X, s.ball.Y, s.ball.Radius)
	syncBody(s.playerBody, s.player.X, s.player.Y, s.player.Radius)
	syncBody(s.opponentBody, s.opponent.X, s.opponent.Y, s.opponent.Radius)
}
