// Package physics provides the movement bodies fighters are driven through.
// The simulation only commands velocities and reads positions back; how a
// body integrates and collides is up to the Space that created it.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is an opaque mover with a position and a commanded velocity.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
}

// Space owns the bodies and static walls of one arena.
type Space interface {
	NewBody(pos mgl64.Vec3, radius float64) Body
	AddWall(w Rect)
	Remove(b Body)
	Step(dt float64)
}

// Rect is an axis aligned box on the floor plane, in arena units.
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// BoundaryWalls returns four walls of the given thickness enclosing a floor
// of width x depth centred on the origin.
func BoundaryWalls(width, depth, thickness float64) []Rect {
	hw, hd := width/2, depth/2
	return []Rect{
		{MinX: -hw - thickness, MinZ: -hd - thickness, MaxX: hw + thickness, MaxZ: -hd}, // north
		{MinX: -hw - thickness, MinZ: hd, MaxX: hw + thickness, MaxZ: hd + thickness},   // south
		{MinX: -hw - thickness, MinZ: -hd, MaxX: -hw, MaxZ: hd},                         // west
		{MinX: hw, MinZ: -hd, MaxX: hw + thickness, MaxZ: hd},                           // east
	}
}

// integrateVertical moves y by vy*dt and lands the body on the floor at y=0.
// Nothing in the arena pushes bodies up, so vertical motion only matters when
// a caller commands it.
func integrateVertical(y, vy, dt float64) (float64, float64) {
	y += vy * dt
	if y < 0 {
		return 0, 0
	}
	return y, vy
}
