package systems

import (
	"math"
	"testing"

	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
)

type fighter struct {
	state components.StateData
	pose  components.PoseData
	melee components.MeleeData
	input components.InputData
}

func newFighter() *fighter {
	return &fighter{
		state: components.StateData{Current: components.Idle{}},
		pose:  components.NewPose(cfg.JointShoulder, cfg.JointElbow, cfg.JointTorso),
	}
}

func (f *fighter) hold(actions ...cfg.ActionID) {
	f.input.Previous = f.input.Current
	f.input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		f.input.Current[a] = true
	}
}

func (f *fighter) tick(attacks cfg.Attacks) {
	AdvanceAnimation(&f.state, &f.pose, &f.melee, &f.input, attacks, 0.1)
}

func TestPunchCycleCloses(t *testing.T) {
	attacks := cfg.DefaultAttacks()
	punch := attacks[cfg.AttackPunch]
	f := newFighter()

	f.hold(cfg.ActionPunch)
	f.tick(attacks)
	if _, ok := f.state.Current.(components.Attacking); !ok {
		t.Fatalf("state after punch = %s, want attacking", f.state.Label())
	}

	f.hold()
	var sawRecovering bool
	for i := 0; i < 200 && !f.state.IsIdle(); i++ {
		if s, ok := f.state.Current.(components.Recovering); ok {
			sawRecovering = true
			if s.Kind != cfg.AttackPunch {
				t.Fatalf("recovering from %s, want punch", s.Kind)
			}
		}
		f.tick(attacks)
	}
	if !sawRecovering {
		t.Fatal("never entered recovering")
	}
	if !f.state.IsIdle() {
		t.Fatalf("stuck in %s", f.state.Label())
	}
	for _, d := range punch.Drives {
		if a := f.pose.Angle(d.Joint); math.Abs(a) >= punch.RecoveredThreshold {
			t.Errorf("%s = %g after the cycle, want |a| < %g", d.Joint, a, punch.RecoveredThreshold)
		}
	}
}

func TestPeakTransition(t *testing.T) {
	tests := []struct {
		kind   cfg.AttackKind
		action cfg.ActionID
		ticks  int // ticks until the lead joint crosses the peak at rate 0.1
	}{
		{cfg.AttackPunch, cfg.ActionPunch, 27},
		{cfg.AttackTakedown, cfg.ActionTakedown, 21},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			attacks := cfg.DefaultAttacks()
			f := newFighter()
			f.hold(tt.action)
			for i := 1; i <= tt.ticks; i++ {
				f.tick(attacks)
				_, recovering := f.state.Current.(components.Recovering)
				if i < tt.ticks && recovering {
					t.Fatalf("recovering after %d ticks, want %d", i, tt.ticks)
				}
				if i == tt.ticks && !recovering {
					t.Fatalf("state after %d ticks = %s, want recovering", i, f.state.Label())
				}
			}
		})
	}
}

func TestHitFlagClearedOnNextAttack(t *testing.T) {
	attacks := cfg.DefaultAttacks()
	f := newFighter()

	f.hold(cfg.ActionPunch)
	f.tick(attacks)
	f.melee.HitLanded = true

	f.hold()
	for i := 0; i < 200 && !f.state.IsIdle(); i++ {
		f.tick(attacks)
		if !f.melee.HitLanded {
			t.Fatal("hit flag cleared before the next attack")
		}
	}
	f.tick(attacks)
	if !f.melee.HitLanded {
		t.Fatal("hit flag cleared while idle")
	}

	f.hold(cfg.ActionPunch)
	f.tick(attacks)
	if f.melee.HitLanded {
		t.Fatal("hit flag still set after a new attack started")
	}
}

func TestAttackInputIgnoredWhileBusy(t *testing.T) {
	attacks := cfg.DefaultAttacks()
	f := newFighter()

	f.hold(cfg.ActionPunch)
	f.tick(attacks)
	for i := 0; i < 5; i++ {
		f.hold(cfg.ActionTakedown)
		f.tick(attacks)
		if s, ok := f.state.Current.(components.Attacking); !ok || s.Kind != cfg.AttackPunch {
			t.Fatalf("tick %d: state = %s, want attacking:punch", i, f.state.Label())
		}
	}
}

func TestPunchWinsOverTakedown(t *testing.T) {
	f := newFighter()
	f.hold(cfg.ActionPunch, cfg.ActionTakedown)
	f.tick(cfg.DefaultAttacks())
	if got := f.state.Label(); got != "attacking:punch" {
		t.Fatalf("state = %s, want attacking:punch", got)
	}
}

func TestMissingAttackEntryIgnored(t *testing.T) {
	attacks := cfg.Attacks{cfg.AttackPunch: cfg.DefaultAttacks()[cfg.AttackPunch]}
	f := newFighter()
	f.hold(cfg.ActionTakedown)
	f.tick(attacks)
	if !f.state.IsIdle() {
		t.Fatalf("state = %s, want idle", f.state.Label())
	}
}

func TestIdleDecaysToRest(t *testing.T) {
	f := newFighter()
	f.pose.Joint(cfg.JointShoulder).Current = 1.5
	f.pose.Joint(cfg.JointElbow).Current = -0.7
	f.pose.Joint(cfg.JointTorso).Current = 0.4

	// 1.5 * 0.9^n < 1e-3 holds from n = 70.
	for i := 0; i < 70; i++ {
		f.tick(cfg.DefaultAttacks())
	}
	for name, j := range f.pose.Joints {
		if math.Abs(j.Current) >= 1e-3 {
			t.Errorf("%s = %g, want |a| < 1e-3", name, j.Current)
		}
	}
	if !f.state.IsIdle() {
		t.Fatalf("state = %s, want idle", f.state.Label())
	}
}

func TestUndrivenJointsRelax(t *testing.T) {
	attacks := cfg.DefaultAttacks()
	f := newFighter()
	f.pose.Joint(cfg.JointTorso).Current = 0.5

	f.hold(cfg.ActionPunch)
	prev := 0.5
	for i := 0; i < 10; i++ {
		f.tick(attacks)
		cur := f.pose.Angle(cfg.JointTorso)
		if cur >= prev || cur < 0 {
			t.Fatalf("tick %d: torso went from %g to %g during a punch", i, prev, cur)
		}
		prev = cur
	}
}

func TestAttackDrivesJointMissingFromPose(t *testing.T) {
	attacks := cfg.Attacks{cfg.AttackPunch: {
		Kind:               cfg.AttackPunch,
		Drives:             []cfg.JointDrive{{Joint: "wrist", Target: 1.0}},
		PeakThreshold:      0.9,
		RecoveredThreshold: 0.1,
		Reach:              1,
		Damage:             1,
	}}
	f := newFighter()
	f.hold(cfg.ActionPunch)
	f.tick(attacks)

	wrist, ok := f.pose.Joints["wrist"]
	if !ok {
		t.Fatal("wrist joint was not added to the pose")
	}
	if wrist.Target != 1.0 || math.Abs(wrist.Current-0.1) > 1e-12 {
		t.Fatalf("wrist = %+v, want target 1 and current 0.1", *wrist)
	}
	if f.pose.Joint(cfg.JointShoulder).Target != 0 {
		t.Fatal("undriven shoulder should target rest")
	}
}

func TestStateTimerCountsTicksInState(t *testing.T) {
	attacks := cfg.DefaultAttacks()
	f := newFighter()
	for i := 0; i < 4; i++ {
		f.tick(attacks)
	}
	if f.state.StateTimer != 4 {
		t.Fatalf("idle timer = %d, want 4", f.state.StateTimer)
	}

	f.hold(cfg.ActionPunch)
	f.tick(attacks)
	f.hold()
	for i := 0; i < 5; i++ {
		f.tick(attacks)
	}
	if _, ok := f.state.Current.(components.Attacking); !ok || f.state.StateTimer != 5 {
		t.Fatalf("state = %s after %d ticks, want attacking for 5", f.state.Label(), f.state.StateTimer)
	}
}

func TestActiveAttack(t *testing.T) {
	tests := []struct {
		state components.AnimState
		kind  cfg.AttackKind
		ok    bool
	}{
		{components.Idle{}, 0, false},
		{components.Attacking{Kind: cfg.AttackTakedown}, cfg.AttackTakedown, true},
		{components.Recovering{Kind: cfg.AttackPunch}, cfg.AttackPunch, true},
	}
	for _, tt := range tests {
		t.Run(tt.state.Label(), func(t *testing.T) {
			kind, ok := components.ActiveAttack(tt.state)
			if kind != tt.kind || ok != tt.ok {
				t.Fatalf("ActiveAttack = %s, %v; want %s, %v", kind, ok, tt.kind, tt.ok)
			}
		})
	}
}
