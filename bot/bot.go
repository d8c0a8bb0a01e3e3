// Package bot produces held keys for a computer controlled fighter. Bots only
// see a match snapshot and answer with keys, the same input a human gives.
package bot

import (
	"github.com/automoto/octagon/components"
	"github.com/automoto/octagon/match"
	"github.com/automoto/octagon/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller decides which keys a fighter holds this tick.
type Controller interface {
	Keys(v View) components.Keys
}

// ActorView is what a bot knows about one fighter.
type ActorView struct {
	Position  mgl64.Vec3
	Health    int
	MaxHealth int
	State     string
}

// Idle reports whether the fighter can start an attack.
func (a ActorView) Idle() bool {
	return a.State == components.Idle{}.Label()
}

// HealthFraction returns health as a fraction of max health.
func (a ActorView) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// View is a bot's picture of the match: itself and its target.
type View struct {
	Self   ActorView
	Target ActorView
}

// Delta is the floor plane offset from the bot to its target.
func (v View) Delta() mgl64.Vec3 {
	d := v.Target.Position.Sub(v.Self.Position)
	d[1] = 0
	return d
}

// Distance is the floor plane distance to the target.
func (v View) Distance() float64 {
	return gamemath.Distance(v.Self.Position, v.Target.Position, true)
}

// ViewFor builds the view of fighter id from a snapshot.
func ViewFor(s match.Snapshot, id components.ActorID) View {
	return View{
		Self:   actorView(s.Actors[id]),
		Target: actorView(s.Actors[id.Other()]),
	}
}

func actorView(a match.ActorSnapshot) ActorView {
	return ActorView{
		Position:  a.Position,
		Health:    a.Health,
		MaxHealth: a.MaxHealth,
		State:     a.State,
	}
}

// Still is a controller that never presses anything.
type Still struct{}

func (Still) Keys(View) components.Keys { return components.Keys{} }
