package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	tagSolid   = "solid"
	tagFighter = "fighter"

	// resolv works in whole cells, so arena units are scaled up.
	directScale = 32.0
	directCell  = 16
)

// DirectSpace integrates position directly (position += velocity * dt) and
// stops bodies at walls using a resolv space. Fighters do not block each
// other.
type DirectSpace struct {
	space   *resolv.Space
	originX float64 // arena x of resolv x=0
	originZ float64 // arena z of resolv y=0
	bodies  map[*DirectBody]struct{}
}

// DirectBody is a fighter body inside a DirectSpace.
type DirectBody struct {
	space  *DirectSpace
	object *resolv.Object
	radius float64

	// Position in arena units. The resolv object follows it, never the other
	// way round, so positions do not pick up scaling error.
	x, y, z  float64
	velocity mgl64.Vec3
}

// NewDirectSpace creates a space covering a width x depth floor centred on
// the origin, plus margin on every side for boundary walls.
func NewDirectSpace(width, depth, margin float64) *DirectSpace {
	totalW := width + 2*margin
	totalD := depth + 2*margin
	cellsW := int(math.Ceil(totalW * directScale))
	cellsD := int(math.Ceil(totalD * directScale))
	return &DirectSpace{
		space:   resolv.NewSpace(cellsW, cellsD, directCell, directCell),
		originX: -totalW / 2,
		originZ: -totalD / 2,
		bodies:  make(map[*DirectBody]struct{}),
	}
}

func (s *DirectSpace) toSpace(x, z float64) (float64, float64) {
	return (x - s.originX) * directScale, (z - s.originZ) * directScale
}

func (s *DirectSpace) NewBody(pos mgl64.Vec3, radius float64) Body {
	size := 2 * radius * directScale
	x, y := s.toSpace(pos.X()-radius, pos.Z()-radius)
	obj := resolv.NewObject(x, y, size, size, tagFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	s.space.Add(obj)

	b := &DirectBody{space: s, object: obj, radius: radius, x: pos.X(), y: pos.Y(), z: pos.Z()}
	s.bodies[b] = struct{}{}
	return b
}

func (s *DirectSpace) AddWall(w Rect) {
	x, y := s.toSpace(w.MinX, w.MinZ)
	width := w.Width() * directScale
	height := w.Depth() * directScale
	obj := resolv.NewObject(x, y, width, height, tagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	s.space.Add(obj)
}

func (s *DirectSpace) Remove(b Body) {
	db, ok := b.(*DirectBody)
	if !ok {
		return
	}
	if _, ok := s.bodies[db]; !ok {
		return
	}
	s.space.Remove(db.object)
	delete(s.bodies, db)
}

func (s *DirectSpace) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for b := range s.bodies {
		b.step(dt)
	}
}

// step moves the body one axis at a time so it can slide along walls.
func (b *DirectBody) step(dt float64) {
	dx := b.velocity.X() * dt
	if dx != 0 {
		if check := b.object.Check(dx*directScale, 0, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X() / directScale
				b.velocity[0] = 0
			}
		}
		b.x += dx
		b.sync()
	}

	dz := b.velocity.Z() * dt
	if dz != 0 {
		if check := b.object.Check(0, dz*directScale, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dz = check.ContactWithObject(solids[0]).Y() / directScale
				b.velocity[2] = 0
			}
		}
		b.z += dz
		b.sync()
	}

	b.y, b.velocity[1] = integrateVertical(b.y, b.velocity.Y(), dt)
}

// sync moves the resolv object to the body's arena position.
func (b *DirectBody) sync() {
	b.object.X, b.object.Y = b.space.toSpace(b.x-b.radius, b.z-b.radius)
	b.object.Update()
}

func (b *DirectBody) Position() mgl64.Vec3 {
	return mgl64.Vec3{b.x, b.y, b.z}
}

func (b *DirectBody) Velocity() mgl64.Vec3 {
	return b.velocity
}

func (b *DirectBody) SetVelocity(v mgl64.Vec3) {
	b.velocity = v
}
