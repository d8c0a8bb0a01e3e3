package components

import (
	cfg "github.com/automoto/octagon/config"
	"github.com/yohamta/donburi"
)

// Keys maps lowercase key identifiers ("w", "j") to their pressed state.
type Keys map[string]bool

// KeysOf builds a Keys value with the given keys held.
func KeysOf(held ...string) Keys {
	k := make(Keys, len(held))
	for _, key := range held {
		k[key] = true
	}
	return k
}

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Keys     Keys // raw keys sampled this tick
}

// Pressed reports whether an action is held this tick.
func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

// JustPressed reports whether an action went down this tick.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
