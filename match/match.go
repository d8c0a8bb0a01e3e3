// Package match runs one fight between the player and the opponent. A Match
// owns its donburi world and movement bodies and is not safe for concurrent
// use: drive it from a single goroutine.
package match

import (
	"log"

	"github.com/automoto/octagon/archetypes"
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/physics"
	"github.com/automoto/octagon/shared/arenadata"
	"github.com/automoto/octagon/shared/gamemath"
	"github.com/automoto/octagon/systems"
	"github.com/automoto/octagon/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Input is the keys held by each fighter for one tick.
type Input struct {
	Player   components.Keys
	Opponent components.Keys
}

// For returns the keys of one fighter.
func (in Input) For(id components.ActorID) components.Keys {
	if id == components.Player {
		return in.Player
	}
	return in.Opponent
}

// Option configures a Match.
type Option func(*Match)

// WithSpace sets the movement body backend. newSpace is called on every
// reset so each match starts from an empty space.
func WithSpace(newSpace func() physics.Space) Option {
	return func(m *Match) { m.newSpace = newSpace }
}

// WithArena sets the walls and spawn points.
func WithArena(arena *arenadata.Arena) Option {
	return func(m *Match) { m.arena = arena }
}

// WithAttacks fixes the attack table instead of reading config.AttackTable
// on every reset.
func WithAttacks(attacks cfg.Attacks) Option {
	return func(m *Match) { m.fixedAttacks = attacks }
}

// settings are the tuning values a match runs with, captured on reset so a
// reload mid-fight does not change the rules.
type settings struct {
	health     int
	speed      float64
	radius     float64
	mass       float64
	rate       float64
	timeScaled bool
	refHz      float64
	normalize  bool
	planar     bool
}

func currentSettings() settings {
	return settings{
		health:     cfg.Fighter.Health,
		speed:      cfg.Fighter.MoveSpeed,
		radius:     cfg.Fighter.Radius,
		mass:       cfg.Fighter.Mass,
		rate:       cfg.Animation.DecayRate,
		timeScaled: cfg.Animation.TimeScaled,
		refHz:      cfg.Animation.ReferenceTickRate,
		normalize:  cfg.Locomotion.NormalizeDiagonal,
		planar:     cfg.Combat.Planar,
	}
}

type Match struct {
	world    donburi.World
	space    physics.Space
	newSpace func() physics.Space
	arena    *arenadata.Arena

	fixedAttacks cfg.Attacks
	attacks      cfg.Attacks
	joints       []cfg.Joint
	settings     settings

	actors     [2]donburi.Entity
	matchEntry donburi.Entity
	ready      bool
}

// New creates a match with both fighters spawned, at full health and idle.
func New(opts ...Option) *Match {
	m := &Match{}
	for _, opt := range opts {
		opt(m)
	}
	if m.arena == nil {
		m.arena = DefaultArena()
	}
	if m.newSpace == nil {
		m.newSpace = defaultSpace(m.arena)
	}
	m.Reset()
	return m
}

// DefaultArena is an open floor from config.Arena with boundary walls and
// the fighters a few units apart on the x axis.
func DefaultArena() *arenadata.Arena {
	arena := &arenadata.Arena{
		Name:  "default",
		Width: cfg.Arena.Width,
		Depth: cfg.Arena.Depth,
		Spawns: map[string]mgl64.Vec3{
			components.Player.String():   {-cfg.Fighter.SpawnOffsetX, 0, 0},
			components.Opponent.String(): {cfg.Fighter.SpawnOffsetX, 0, 0},
		},
	}
	for _, w := range physics.BoundaryWalls(cfg.Arena.Width, cfg.Arena.Depth, cfg.Arena.WallThickness) {
		arena.Walls = append(arena.Walls, arenadata.Rect(w))
	}
	return arena
}

func defaultSpace(arena *arenadata.Arena) func() physics.Space {
	return func() physics.Space {
		if cfg.Physics.Body == cfg.BodyDirect {
			return physics.NewDirectSpace(arena.Width, arena.Depth, 2*cfg.Arena.WallThickness)
		}
		return physics.NewRigidSpace(cfg.Physics.Iterations, cfg.Physics.Damping)
	}
}

// Reset throws both fighters away and starts a new match, picking up any
// tuning applied since the last reset.
func (m *Match) Reset() {
	if m.ready {
		for _, e := range m.actors {
			if m.world.Valid(e) {
				m.space.Remove(components.Body.Get(m.world.Entry(e)).Body)
			}
		}
	}

	m.settings = currentSettings()
	m.attacks = m.fixedAttacks
	if m.attacks == nil {
		m.attacks = cfg.AttackTable
	}
	m.joints = append(append([]cfg.Joint(nil), cfg.Animation.Joints...), m.attacks.Joints()...)

	m.world = donburi.NewWorld()
	m.space = m.newSpace()
	for _, w := range m.arena.Walls {
		m.space.AddWall(physics.Rect(w))
	}

	for _, id := range []components.ActorID{components.Player, components.Opponent} {
		m.actors[id] = m.spawnFighter(id).Entity()
	}
	m.matchEntry = archetypes.Match.Spawn(m.world).Entity()
	components.Match.SetValue(m.world.Entry(m.matchEntry), components.MatchData{
		State: cfg.MatchStatePlaying,
	})
	m.ready = true

	log.Printf("Match started: arena %s, %d hp, %s bodies", m.arena.Name, m.settings.health, bodyKind(m.space))
}

func (m *Match) spawnFighter(id components.ActorID) *donburi.Entry {
	pos, ok := m.arena.Spawn(id.String())
	if !ok {
		x := cfg.Fighter.SpawnOffsetX
		if id == components.Player {
			x = -x
		}
		pos = mgl64.Vec3{x, 0, 0}
	}

	var body physics.Body
	if rigid, ok := m.space.(*physics.RigidSpace); ok {
		body = rigid.NewBodyWithMass(pos, m.settings.radius, m.settings.mass)
	} else {
		body = m.space.NewBody(pos, m.settings.radius)
	}

	tag := tagFor(id)
	e := archetypes.Fighter.Spawn(m.world, tag)
	components.Actor.SetValue(e, components.ActorData{ID: id})
	components.Body.SetValue(e, components.BodyData{Body: body})
	components.Health.SetValue(e, components.HealthData{
		Current: m.settings.health,
		Max:     m.settings.health,
	})
	components.Pose.SetValue(e, components.NewPose(m.joints...))
	components.State.SetValue(e, components.StateData{Current: components.Idle{}})
	return e
}

// Tick advances the match by one step of dt seconds and returns the damage
// dealt during it. Tick keeps running after a knockout; what to do with a
// finished match is up to the caller.
func (m *Match) Tick(in Input, dt float64) []components.DamageEventData {
	m.mustBeReady()

	systems.UpdateInput(m.world, in.For)
	systems.UpdateLocomotion(m.world, m.settings.speed, m.settings.normalize)
	m.space.Step(dt)
	systems.UpdateFacing(m.world)
	systems.UpdateAnimation(m.world, m.attacks, m.rate(dt))
	events := systems.UpdateCombat(m.world, m.attacks, m.settings.planar)

	wasFinished := m.Finished()
	systems.UpdateMatch(m.world, dt)
	if !wasFinished && m.Finished() {
		if winner, ok := m.Winner(); ok {
			log.Printf("Match over: %s wins on tick %d", winner, m.data().Tick)
		} else {
			log.Printf("Match over: double knockout on tick %d", m.data().Tick)
		}
	}
	return events
}

func (m *Match) rate(dt float64) float64 {
	if m.settings.timeScaled {
		return gamemath.DecayRate(m.settings.rate, dt, m.settings.refHz)
	}
	return m.settings.rate
}

// Finished reports whether a fighter has been knocked out.
func (m *Match) Finished() bool {
	return m.data().State == cfg.MatchStateFinished
}

// Winner returns the fighter left standing. It reports false while the match
// is running and after a double knockout.
func (m *Match) Winner() (components.ActorID, bool) {
	d := m.data()
	return d.Winner, d.HasWinner
}

// Attacks returns the attack table the current match runs with.
func (m *Match) Attacks() cfg.Attacks {
	return m.attacks
}

// Arena returns the arena layout.
func (m *Match) Arena() *arenadata.Arena {
	return m.arena
}

// Entry returns a fighter's entity. It panics if the match was not created
// with New.
func (m *Match) Entry(id components.ActorID) *donburi.Entry {
	m.mustBeReady()
	if id != components.Player && id != components.Opponent {
		log.Panicf("match: unknown actor %d", id)
	}
	return m.world.Entry(m.actors[id])
}

func (m *Match) data() *components.MatchData {
	m.mustBeReady()
	return components.Match.Get(m.world.Entry(m.matchEntry))
}

func (m *Match) mustBeReady() {
	if m == nil || !m.ready {
		panic("match: used before New")
	}
}

func tagFor(id components.ActorID) donburi.IComponentType {
	if id == components.Player {
		return tags.Player
	}
	return tags.Opponent
}

func bodyKind(s physics.Space) string {
	switch s.(type) {
	case *physics.RigidSpace:
		return string(cfg.BodyRigid)
	case *physics.DirectSpace:
		return string(cfg.BodyDirect)
	}
	return "custom"
}
