package components

import (
	cfg "github.com/automoto/kickoff/config"
	"github.com/yohamta/donburi"
)

// RulesData holds the contact and bounce constants for the running match.
type RulesData struct {
	cfg.RulesConfig
	LeaderboardLimit int
}

var Rules = donburi.NewComponentType[RulesData]()
