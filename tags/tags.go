package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Opponent = donburi.NewTag().SetName("Opponent")
	Ball     = donburi.NewTag().SetName("Ball")
)

// Resolv tags for the contact broad phase
const (
	ResolvBall     = "ball"
	ResolvAgent    = "agent"
	ResolvPlayer   = "player"
	ResolvOpponent = "opponent"
)
