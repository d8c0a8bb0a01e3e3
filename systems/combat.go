package systems

import (
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/shared/gamemath"
	"github.com/automoto/octagon/tags"
	"github.com/yohamta/donburi"
)

// Resolve checks whether the attacker's current attack lands on the
// defender. A landed hit sets the attacker's hit flag so the same attack
// cannot land again.
func Resolve(attacker, defender *donburi.Entry, attacks cfg.Attacks, planar bool) (components.DamageEventData, bool) {
	attacking, ok := components.State.Get(attacker).Current.(components.Attacking)
	if !ok {
		return components.DamageEventData{}, false
	}
	melee := components.Melee.Get(attacker)
	if melee.HitLanded {
		return components.DamageEventData{}, false
	}
	def, ok := attacks.Get(attacking.Kind)
	if !ok {
		return components.DamageEventData{}, false
	}

	dist := gamemath.Distance(
		components.Body.Get(attacker).Position(),
		components.Body.Get(defender).Position(),
		planar,
	)
	if dist >= def.Reach {
		return components.DamageEventData{}, false
	}

	melee.HitLanded = true
	return components.DamageEventData{
		Attacker: components.Actor.Get(attacker).ID,
		Defender: components.Actor.Get(defender).ID,
		Kind:     attacking.Kind.String(),
		Amount:   def.Damage,
	}, true
}

// ApplyDamage lowers health by amount, never below zero.
func ApplyDamage(h *components.HealthData, amount int) {
	if amount <= 0 {
		return
	}
	h.Current = gamemath.ClampInt(h.Current-amount, 0, h.Current)
}

// UpdateCombat resolves hits for both fighters against the pose and positions
// of this tick, queues them on the defenders and then applies them.
func UpdateCombat(w donburi.World, attacks cfg.Attacks, planar bool) []components.DamageEventData {
	fighters := fightersByID(w)
	for _, id := range []components.ActorID{components.Player, components.Opponent} {
		attacker, ok := fighters[id]
		if !ok {
			continue
		}
		defender, ok := fighters[id.Other()]
		if !ok {
			continue
		}
		if ev, ok := Resolve(attacker, defender, attacks, planar); ok {
			donburi.Add(defender, components.DamageEvent, &ev)
		}
	}
	return UpdateHealth(w)
}

// UpdateHealth drains queued damage events into health and keeps health
// within 0..Max. It returns the drained events.
func UpdateHealth(w donburi.World) []components.DamageEventData {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		hit = append(hit, e)
	}

	var events []components.DamageEventData
	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		ApplyDamage(components.Health.Get(e), dmg.Amount)
		events = append(events, dmg)

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	for e := range components.Health.Iter(w) {
		hp := components.Health.Get(e)
		hp.Current = gamemath.ClampInt(hp.Current, 0, hp.Max)
	}
	return events
}

func fightersByID(w donburi.World) map[components.ActorID]*donburi.Entry {
	out := make(map[components.ActorID]*donburi.Entry, 2)
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		out[components.Actor.Get(e).ID] = e
	})
	return out
}
