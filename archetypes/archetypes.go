package archetypes

import (
	"github.com/automoto/octagon/components"
	"github.com/automoto/octagon/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Actor,
		components.Body,
		components.Health,
		components.Pose,
		components.State,
		components.Melee,
		components.Input,
	)
	Match = newArchetype(
		components.Match,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType(nil), a.components...)
	return w.Entry(w.Create(append(comps, cs...)...))
}
