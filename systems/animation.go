package systems

import (
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/shared/gamemath"
	"github.com/automoto/octagon/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimation advances every fighter's animation state and pose by one
// tick. rate is the fraction of the remaining joint error closed this tick.
func UpdateAnimation(w donburi.World, attacks cfg.Attacks, rate float64) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		AdvanceAnimation(
			components.State.Get(e),
			components.Pose.Get(e),
			components.Melee.Get(e),
			components.Input.Get(e),
			attacks,
			rate,
		)
	})
}

// AdvanceAnimation runs one tick of the state machine for a single fighter:
// start a requested attack, set joint targets, move every joint, then check
// the transitions against the moved pose.
func AdvanceAnimation(
	state *components.StateData,
	pose *components.PoseData,
	melee *components.MeleeData,
	input *components.InputData,
	attacks cfg.Attacks,
	rate float64,
) {
	if state.Current == nil {
		state.Enter(components.Idle{})
	}
	state.StateTimer++

	// Only an idle fighter can start an attack; there is no queueing.
	if state.IsIdle() {
		if kind, ok := requestedAttack(input); ok {
			if _, ok := attacks.Get(kind); ok {
				state.Enter(components.Attacking{Kind: kind})
				melee.HitLanded = false
			}
		}
	}

	setJointTargets(state, pose, attacks)

	for _, j := range pose.Joints {
		j.Current = gamemath.Approach(j.Current, j.Target, rate)
	}

	kind, active := components.ActiveAttack(state.Current)
	if !active {
		return
	}
	def, ok := attacks.Get(kind)
	if !ok {
		state.Enter(components.Idle{})
		return
	}
	switch state.Current.(type) {
	case components.Attacking:
		if def.PeakReached(pose.Angle(def.Lead().Joint)) {
			state.Enter(components.Recovering{Kind: kind})
		}
	case components.Recovering:
		if recovered(def, pose) {
			state.Enter(components.Idle{})
		}
	}
}

// requestedAttack maps held attack actions to a kind. Punch wins when both
// are held.
func requestedAttack(input *components.InputData) (cfg.AttackKind, bool) {
	if input == nil {
		return 0, false
	}
	if input.Pressed(cfg.ActionPunch) {
		return cfg.AttackPunch, true
	}
	if input.Pressed(cfg.ActionTakedown) {
		return cfg.AttackTakedown, true
	}
	return 0, false
}

// setJointTargets drives the attack's joints while attacking and sends every
// other joint back to rest.
func setJointTargets(state *components.StateData, pose *components.PoseData, attacks cfg.Attacks) {
	var def cfg.AttackDef
	attacking := false
	if s, ok := state.Current.(components.Attacking); ok {
		def, attacking = attacks.Get(s.Kind)
	}
	if attacking {
		// Tuning may drive joints the pose was not created with.
		for _, d := range def.Drives {
			pose.Joint(d.Joint)
		}
	}

	for _, name := range pose.Names() {
		target := 0.0
		if attacking {
			if t, ok := def.DrivesJoint(name); ok {
				target = t
			}
		}
		pose.Joint(name).Target = target
	}
}

func recovered(def cfg.AttackDef, pose *components.PoseData) bool {
	for _, d := range def.Drives {
		if !def.Recovered(pose.Angle(d.Joint)) {
			return false
		}
	}
	return true
}
