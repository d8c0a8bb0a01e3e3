package components

import (
	"sort"

	cfg "github.com/automoto/octagon/config"
	"github.com/yohamta/donburi"
)

// Joint holds the current and target angle of one joint, in radians.
type Joint struct {
	Current float64
	Target  float64
}

type PoseData struct {
	Joints map[cfg.Joint]*Joint
}

// NewPose returns a rest pose with every listed joint at zero.
func NewPose(joints ...cfg.Joint) PoseData {
	p := PoseData{Joints: make(map[cfg.Joint]*Joint, len(joints))}
	for _, j := range joints {
		p.Joints[j] = &Joint{}
	}
	return p
}

// Joint returns the named joint, adding it at rest if it is missing.
func (p *PoseData) Joint(name cfg.Joint) *Joint {
	if p.Joints == nil {
		p.Joints = make(map[cfg.Joint]*Joint)
	}
	j, ok := p.Joints[name]
	if !ok {
		j = &Joint{}
		p.Joints[name] = j
	}
	return j
}

// Angle returns the current angle of a joint, zero if the joint is unknown.
func (p *PoseData) Angle(name cfg.Joint) float64 {
	if j, ok := p.Joints[name]; ok {
		return j.Current
	}
	return 0
}

// Names returns the joint names in a stable order.
func (p *PoseData) Names() []cfg.Joint {
	names := make([]cfg.Joint, 0, len(p.Joints))
	for name := range p.Joints {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Snapshot copies the current angles.
func (p *PoseData) Snapshot() map[cfg.Joint]float64 {
	out := make(map[cfg.Joint]float64, len(p.Joints))
	for name, j := range p.Joints {
		out[name] = j.Current
	}
	return out
}

var Pose = donburi.NewComponentType[PoseData]()
