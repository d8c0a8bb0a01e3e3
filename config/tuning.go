package config

import (
	"embed"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var tuningFS embed.FS

// TuningFile is the default tuning file name, both on disk and embedded.
const TuningFile = "tuning.yaml"

// Tuning is the YAML view of the gameplay values that designers iterate on.
type Tuning struct {
	Fighter    FighterTuning         `yaml:"fighter"`
	Animation  AnimationTuning       `yaml:"animation"`
	Locomotion LocomotionTuning      `yaml:"locomotion"`
	Combat     CombatTuning          `yaml:"combat"`
	Attacks    map[string]AttackSpec `yaml:"attacks"`
}

type FighterTuning struct {
	Health    int     `yaml:"health"`
	MoveSpeed float64 `yaml:"move_speed"`
	Radius    float64 `yaml:"radius"`
}

type AnimationTuning struct {
	DecayRate         float64 `yaml:"decay_rate"`
	TimeScaled        bool    `yaml:"time_scaled"`
	ReferenceTickRate float64 `yaml:"reference_tick_rate"`
}

type LocomotionTuning struct {
	NormalizeDiagonal bool `yaml:"normalize_diagonal"`
}

type CombatTuning struct {
	Planar bool `yaml:"planar"`
}

type AttackSpec struct {
	Drives    []DriveSpec `yaml:"drives"`
	Peak      float64     `yaml:"peak"`
	Recovered float64     `yaml:"recovered"`
	Reach     float64     `yaml:"reach"`
	Damage    int         `yaml:"damage"`
}

type DriveSpec struct {
	Joint  string  `yaml:"joint"`
	Target float64 `yaml:"target"`
}

// CurrentTuning captures the active globals as a Tuning.
func CurrentTuning() *Tuning {
	t := &Tuning{
		Fighter: FighterTuning{
			Health:    Fighter.Health,
			MoveSpeed: Fighter.MoveSpeed,
			Radius:    Fighter.Radius,
		},
		Animation: AnimationTuning{
			DecayRate:         Animation.DecayRate,
			TimeScaled:        Animation.TimeScaled,
			ReferenceTickRate: Animation.ReferenceTickRate,
		},
		Locomotion: LocomotionTuning{NormalizeDiagonal: Locomotion.NormalizeDiagonal},
		Combat:     CombatTuning{Planar: Combat.Planar},
		Attacks:    map[string]AttackSpec{},
	}
	for kind, def := range AttackTable {
		spec := AttackSpec{
			Peak:      def.PeakThreshold,
			Recovered: def.RecoveredThreshold,
			Reach:     def.Reach,
			Damage:    def.Damage,
		}
		for _, d := range def.Drives {
			spec.Drives = append(spec.Drives, DriveSpec{Joint: string(d.Joint), Target: d.Target})
		}
		t.Attacks[kind.String()] = spec
	}
	return t
}

// LoadTuning reads a tuning file, preferring a copy on disk over the embedded
// default. Keys missing from the file keep their current values; an attack
// entry replaces the whole attack.
func LoadTuning(name string) (*Tuning, error) {
	data, err := readTuning(name)
	if err != nil {
		return nil, fmt.Errorf("load tuning %s: %w", name, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates YAML tuning data over the current values.
func ParseTuning(data []byte) (*Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func readTuning(name string) ([]byte, error) {
	if name == "" {
		name = TuningFile
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return tuningFS.ReadFile(filepath.Base(name))
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	if t.Fighter.Health <= 0 {
		return fmt.Errorf("tuning: fighter health must be positive, got %d", t.Fighter.Health)
	}
	if t.Fighter.MoveSpeed < 0 {
		return fmt.Errorf("tuning: move speed must not be negative, got %g", t.Fighter.MoveSpeed)
	}
	if t.Animation.DecayRate <= 0 || t.Animation.DecayRate >= 1 {
		return fmt.Errorf("tuning: decay rate must be in (0,1), got %g", t.Animation.DecayRate)
	}
	if t.Animation.TimeScaled && t.Animation.ReferenceTickRate <= 0 {
		return fmt.Errorf("tuning: reference tick rate must be positive when time scaled")
	}
	for name, spec := range t.Attacks {
		if _, ok := ParseAttackKind(name); !ok {
			return fmt.Errorf("tuning: unknown attack %q", name)
		}
		if len(spec.Drives) == 0 {
			return fmt.Errorf("tuning: attack %s drives no joints", name)
		}
		lead := spec.Drives[0].Target
		if spec.Peak == 0 || math.Signbit(spec.Peak) != math.Signbit(lead) || math.Abs(spec.Peak) >= math.Abs(lead) {
			return fmt.Errorf("tuning: attack %s peak %g must lie between 0 and the lead target %g", name, spec.Peak, lead)
		}
		if spec.Recovered <= 0 {
			return fmt.Errorf("tuning: attack %s recovered threshold must be positive", name)
		}
		if spec.Reach <= 0 {
			return fmt.Errorf("tuning: attack %s reach must be positive", name)
		}
		if spec.Damage < 0 {
			return fmt.Errorf("tuning: attack %s damage must not be negative", name)
		}
		for _, d := range spec.Drives {
			if d.Joint == "" {
				return fmt.Errorf("tuning: attack %s has a drive without a joint", name)
			}
		}
	}
	return nil
}

// AttackTable builds an attack table from the tuning.
func (t *Tuning) AttackTable() Attacks {
	table := Attacks{}
	for name, spec := range t.Attacks {
		kind, ok := ParseAttackKind(name)
		if !ok {
			continue
		}
		def := AttackDef{
			Kind:               kind,
			PeakThreshold:      spec.Peak,
			RecoveredThreshold: spec.Recovered,
			Reach:              spec.Reach,
			Damage:             spec.Damage,
		}
		for _, d := range spec.Drives {
			def.Drives = append(def.Drives, JointDrive{Joint: Joint(d.Joint), Target: d.Target})
		}
		table[kind] = def
	}
	return table
}

// Apply overwrites the global configuration. Running matches keep the values
// they started with; the next match picks these up.
func (t *Tuning) Apply() {
	Fighter.Health = t.Fighter.Health
	Fighter.MoveSpeed = t.Fighter.MoveSpeed
	if t.Fighter.Radius > 0 {
		Fighter.Radius = t.Fighter.Radius
	}
	Animation.DecayRate = t.Animation.DecayRate
	Animation.TimeScaled = t.Animation.TimeScaled
	if t.Animation.ReferenceTickRate > 0 {
		Animation.ReferenceTickRate = t.Animation.ReferenceTickRate
	}
	Locomotion.NormalizeDiagonal = t.Locomotion.NormalizeDiagonal
	Combat.Planar = t.Combat.Planar

	AttackTable = t.AttackTable()
	Animation.Joints = mergeJoints(Animation.Joints, AttackTable.Joints())
}

func mergeJoints(base, extra []Joint) []Joint {
	out := append([]Joint(nil), base...)
	for _, j := range extra {
		found := false
		for _, b := range out {
			if b == j {
				found = true
				break
			}
		}
		if !found {
			out = append(out, j)
		}
	}
	return out
}
