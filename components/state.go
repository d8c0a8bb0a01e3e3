package components

import (
	cfg "github.com/automoto/octagon/config"
	"github.com/yohamta/donburi"
)

// AnimState is one of Idle, Attacking or Recovering. The unexported method
// keeps the set closed.
type AnimState interface {
	Label() string
	animState()
}

type Idle struct{}

// Attacking drives the attack's joints toward their targets.
type Attacking struct {
	Kind cfg.AttackKind
}

// Recovering relaxes the attack's joints back to rest.
type Recovering struct {
	Kind cfg.AttackKind
}

func (Idle) Label() string         { return "idle" }
func (s Attacking) Label() string  { return "attacking:" + s.Kind.String() }
func (s Recovering) Label() string { return "recovering:" + s.Kind.String() }

func (Idle) animState()       {}
func (Attacking) animState()  {}
func (Recovering) animState() {}

// ActiveAttack returns the attack kind the state belongs to, if any.
func ActiveAttack(s AnimState) (cfg.AttackKind, bool) {
	switch s := s.(type) {
	case Attacking:
		return s.Kind, true
	case Recovering:
		return s.Kind, true
	}
	return 0, false
}

type StateData struct {
	Current    AnimState
	StateTimer int // ticks spent in Current
}

// Enter switches to next and restarts the state timer.
func (s *StateData) Enter(next AnimState) {
	s.Current = next
	s.StateTimer = 0
}

// IsIdle treats a zero StateData as idle.
func (s *StateData) IsIdle() bool {
	if s.Current == nil {
		return true
	}
	_, ok := s.Current.(Idle)
	return ok
}

// Label returns the current state label.
func (s *StateData) Label() string {
	if s.Current == nil {
		return Idle{}.Label()
	}
	return s.Current.Label()
}

var State = donburi.NewComponentType[StateData]()
