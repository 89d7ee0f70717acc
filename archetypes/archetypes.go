package archetypes

import (
	"github.com/automoto/kickoff/components"
	"github.com/automoto/kickoff/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Agent,
		components.Object,
	)
	Opponent = newArchetype(
		tags.Opponent,
		components.Agent,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	Field = newArchetype(
		components.Field,
	)
	Match = newArchetype(
		components.Match,
		components.Rules,
		components.Input,
		components.Audio,
		components.Banner,
		components.Debug,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
