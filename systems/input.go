package systems

import (
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/tags"
	"github.com/yohamta/donburi"
)

// UpdateInput samples this tick's keys for every fighter and resolves them
// into actions. Must run BEFORE locomotion and animation.
func UpdateInput(w donburi.World, keysFor func(components.ActorID) components.Keys) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		input := components.Input.Get(e)

		// Swap buffers: current becomes previous
		input.Previous = input.Current
		input.Keys = nil
		if keysFor != nil {
			input.Keys = keysFor(actor.ID)
		}
		input.Current = cfg.Input.Actions(input.Keys)
	})
}
