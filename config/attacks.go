package config

import (
	"math"
	"sort"
)

// Joint names a rotational degree of freedom of the procedural skeleton
type Joint string

const (
	JointShoulder Joint = "shoulder"
	JointElbow    Joint = "elbow"
	JointTorso    Joint = "torso"
)

// AttackKind identifies one of the melee moves
type AttackKind int

const (
	AttackPunch AttackKind = iota
	AttackTakedown
)

var attackNames = map[AttackKind]string{
	AttackPunch:    "punch",
	AttackTakedown: "takedown",
}

func (k AttackKind) String() string {
	if name, ok := attackNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseAttackKind maps a lowercase attack name to its kind.
func ParseAttackKind(name string) (AttackKind, bool) {
	for kind, n := range attackNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// JointDrive is one joint an attack rotates and the angle it rotates toward
type JointDrive struct {
	Joint  Joint
	Target float64 // radians
}

// AttackDef describes a single melee move. The first drive is the lead joint:
// the strike phase ends when the lead joint crosses PeakThreshold.
type AttackDef struct {
	Kind   AttackKind
	Drives []JointDrive

	PeakThreshold      float64 // signed, same sign as the lead target
	RecoveredThreshold float64 // |angle| below which a driven joint counts as at rest

	Reach  float64 // max attacker/defender distance for the hit to land
	Damage int
}

// Lead returns the drive whose angle decides the end of the strike phase.
func (a AttackDef) Lead() JointDrive {
	if len(a.Drives) == 0 {
		return JointDrive{}
	}
	return a.Drives[0]
}

// DrivesJoint returns the target angle for j when the attack rotates it.
func (a AttackDef) DrivesJoint(j Joint) (float64, bool) {
	for _, d := range a.Drives {
		if d.Joint == j {
			return d.Target, true
		}
	}
	return 0, false
}

// PeakReached compares the lead joint angle against the signed peak threshold.
// Negative thresholds are reached from above, positive ones from below.
func (a AttackDef) PeakReached(angle float64) bool {
	if a.PeakThreshold < 0 {
		return angle <= a.PeakThreshold
	}
	return angle >= a.PeakThreshold
}

// Recovered reports whether a driven joint has relaxed back near rest.
func (a AttackDef) Recovered(angle float64) bool {
	return math.Abs(angle) < a.RecoveredThreshold
}

// Attacks is an immutable attack table keyed by kind
type Attacks map[AttackKind]AttackDef

// Get looks up an attack definition. Missing kinds report false.
func (t Attacks) Get(kind AttackKind) (AttackDef, bool) {
	def, ok := t[kind]
	return def, ok
}

// Joints returns every joint driven by any attack, sorted by name.
func (t Attacks) Joints() []Joint {
	seen := map[Joint]bool{}
	var joints []Joint
	for _, def := range t {
		for _, d := range def.Drives {
			if !seen[d.Joint] {
				seen[d.Joint] = true
				joints = append(joints, d.Joint)
			}
		}
	}
	sort.Slice(joints, func(i, j int) bool { return joints[i] < joints[j] })
	return joints
}

// AttackTable is the active attack table. Matches copy it when they start.
var AttackTable Attacks

// DefaultAttacks returns the built-in attack table.
func DefaultAttacks() Attacks {
	return Attacks{
		AttackPunch: {
			Kind: AttackPunch,
			Drives: []JointDrive{
				{Joint: JointShoulder, Target: -1.6},
				{Joint: JointElbow, Target: -0.4},
			},
			PeakThreshold:      -1.5,
			RecoveredThreshold: 0.1,
			Reach:              1.5,
			Damage:             10,
		},
		AttackTakedown: {
			Kind: AttackTakedown,
			Drives: []JointDrive{
				{Joint: JointTorso, Target: 0.9},
				{Joint: JointShoulder, Target: -0.6},
			},
			PeakThreshold:      0.8,
			RecoveredThreshold: 0.1,
			Reach:              1.2,
			Damage:             20,
		},
	}
}
