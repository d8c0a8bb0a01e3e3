package systems

import (
	"github.com/automoto/octagon/archetypes"
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// fixedBody stays where it is put and records the last commanded velocity.
type fixedBody struct {
	pos mgl64.Vec3
	vel mgl64.Vec3
}

func (b *fixedBody) Position() mgl64.Vec3     { return b.pos }
func (b *fixedBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *fixedBody) SetVelocity(v mgl64.Vec3) { b.vel = v }

func spawnFighter(w donburi.World, id components.ActorID, pos mgl64.Vec3, health int) (*donburi.Entry, *fixedBody) {
	e := archetypes.Fighter.Spawn(w)
	body := &fixedBody{pos: pos}
	components.Actor.SetValue(e, components.ActorData{ID: id})
	components.Body.SetValue(e, components.BodyData{Body: body})
	components.Health.SetValue(e, components.HealthData{Current: health, Max: 100})
	components.Pose.SetValue(e, components.NewPose(cfg.JointShoulder, cfg.JointElbow, cfg.JointTorso))
	components.State.SetValue(e, components.StateData{Current: components.Idle{}})
	return e, body
}

func newDuel(distance float64) (donburi.World, *donburi.Entry, *donburi.Entry) {
	w := donburi.NewWorld()
	a, _ := spawnFighter(w, components.Player, mgl64.Vec3{0, 0, 0}, 100)
	d, _ := spawnFighter(w, components.Opponent, mgl64.Vec3{distance, 0, 0}, 100)
	return w, a, d
}

func keysFor(m map[components.ActorID]components.Keys) func(components.ActorID) components.Keys {
	return func(id components.ActorID) components.Keys { return m[id] }
}
