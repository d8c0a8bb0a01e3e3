// Package arenadata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi or the physics backends: pure data only.
package arenadata

import "github.com/go-gl/mathgl/mgl64"

// Arena holds the layout parsed from a TMX arena file, in arena units with
// the floor centred on the origin.
type Arena struct {
	Name   string
	Width  float64 // x extent
	Depth  float64 // z extent
	Walls  []Rect
	Spawns map[string]mgl64.Vec3 // keyed by fighter label ("player", "ai")
}

// Rect is an axis aligned box on the floor plane.
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Spawn returns the spawn point for a fighter label.
func (a *Arena) Spawn(label string) (mgl64.Vec3, bool) {
	if a == nil {
		return mgl64.Vec3{}, false
	}
	p, ok := a.Spawns[label]
	return p, ok
}
