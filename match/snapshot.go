package match

import (
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/go-gl/mathgl/mgl64"
)

// ActorSnapshot is a read-only copy of one fighter for display.
type ActorSnapshot struct {
	ID        components.ActorID
	Label     string
	Position  mgl64.Vec3
	Yaw       float64
	State          string
	StateTicks     int // ticks spent in State
	Health         int
	MaxHealth      int
	HealthFraction float64
	Joints         map[cfg.Joint]float64
	HitLanded      bool
}

// Snapshot is a read-only copy of the whole match for display.
type Snapshot struct {
	Tick      int
	Elapsed   float64
	State     cfg.MatchStateID
	Winner    components.ActorID
	HasWinner bool
	Actors    [2]ActorSnapshot // indexed by ActorID
}

// Actor returns a snapshot of one fighter. It panics if the match was not
// created with New.
func (m *Match) Actor(id components.ActorID) ActorSnapshot {
	e := m.Entry(id)
	pose := components.Pose.Get(e)
	health := components.Health.Get(e)
	state := components.State.Get(e)
	return ActorSnapshot{
		ID:             id,
		Label:          id.String(),
		Position:       components.Body.Get(e).Position(),
		Yaw:            components.Actor.Get(e).Yaw,
		State:          state.Label(),
		StateTicks:     state.StateTimer,
		Health:         health.Current,
		MaxHealth:      health.Max,
		HealthFraction: health.Fraction(),
		Joints:         pose.Snapshot(),
		HitLanded:      components.Melee.Get(e).HitLanded,
	}
}

// Snapshot copies the state of the match and both fighters.
func (m *Match) Snapshot() Snapshot {
	d := m.data()
	return Snapshot{
		Tick:      d.Tick,
		Elapsed:   d.Elapsed,
		State:     d.State,
		Winner:    d.Winner,
		HasWinner: d.HasWinner,
		Actors: [2]ActorSnapshot{
			m.Actor(components.Player),
			m.Actor(components.Opponent),
		},
	}
}
