package systems

import (
	"github.com/automoto/kickoff/components"
	"github.com/yohamta/donburi/ecs"
)

func getMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

func getInput(e *ecs.ECS) (*components.InputData, bool) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}

func getAudio(e *ecs.ECS) (*components.AudioData, bool) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Audio.Get(entry), true
}

func getField(e *ecs.ECS) (*components.FieldData, bool) {
	entry, ok := components.Field.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Field.Get(entry), true
}
