package config

import "strings"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionPunch
	ActionTakedown
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action. Key identifiers are
// lowercase ("w", "j", "arrowup").
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// Actions resolves held keys into action states, ignoring case. Keys that
// are not bound to any action are ignored.
func (c InputConfig) Actions(held map[string]bool) [ActionCount]bool {
	var out [ActionCount]bool
	if len(held) == 0 {
		return out
	}
	down := make(map[string]bool, len(held))
	for key, pressed := range held {
		if pressed {
			down[strings.ToLower(key)] = true
		}
	}
	for actionID, binding := range c.Bindings {
		for _, key := range binding.Keys {
			if down[strings.ToLower(key)] {
				out[actionID] = true
				break
			}
		}
	}
	return out
}

// BoundKeys returns every key referenced by a binding.
func (c InputConfig) BoundKeys() []string {
	var keys []string
	seen := map[string]bool{}
	for _, binding := range c.Bindings {
		for _, key := range binding.Keys {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// KeyFor returns the first key bound to an action.
func (c InputConfig) KeyFor(action ActionID) string {
	binding, ok := c.Bindings[action]
	if !ok || len(binding.Keys) == 0 {
		return ""
	}
	return binding.Keys[0]
}

func init() {
	// Forward is -z, the direction the default camera looks along.
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {Keys: []string{"w"}},
			ActionMoveBack:    {Keys: []string{"s"}},
			ActionMoveLeft:    {Keys: []string{"a"}},
			ActionMoveRight:   {Keys: []string{"d"}},
			ActionPunch:       {Keys: []string{"j"}},
			ActionTakedown:    {Keys: []string{"l"}},
		},
	}
}
