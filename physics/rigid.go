package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Chipmunk is a 2D engine: arena x maps to cp X and arena z maps to cp Y.

// RigidSpace delegates floor plane integration to a chipmunk space. Fighters
// are circles that cannot rotate; walls are static boxes.
type RigidSpace struct {
	space  *cp.Space
	bodies map[*RigidBody]struct{}
	walls  []*cp.Shape
}

// RigidBody is a fighter body inside a RigidSpace.
type RigidBody struct {
	body  *cp.Body
	shape *cp.Shape

	// Commanded floor velocity, applied inside the step so chipmunk can still
	// cancel the part of it that pushes into a wall or another fighter.
	command   cp.Vector
	commanded bool

	y, vy float64
}

// NewRigidSpace creates an empty chipmunk space without gravity. damping is
// the fraction of velocity kept per second (1 keeps all of it).
func NewRigidSpace(iterations int, damping float64) *RigidSpace {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	if damping > 0 {
		space.SetDamping(damping)
	}
	return &RigidSpace{
		space:  space,
		bodies: make(map[*RigidBody]struct{}),
	}
}

func (s *RigidSpace) NewBody(pos mgl64.Vec3, radius float64) Body {
	body := cp.NewBody(70, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)

	b := &RigidBody{body: body, shape: shape, y: pos.Y()}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		if b.commanded {
			body.SetVelocityVector(b.command)
			return
		}
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
	})

	s.space.AddBody(body)
	s.space.AddShape(shape)

	s.bodies[b] = struct{}{}
	return b
}

// NewBodyWithMass is NewBody with an explicit mass, so heavier fighters shove
// lighter ones when they collide.
func (s *RigidSpace) NewBodyWithMass(pos mgl64.Vec3, radius, mass float64) Body {
	b := s.NewBody(pos, radius).(*RigidBody)
	if mass > 0 {
		b.body.SetMass(mass)
	}
	return b
}

func (s *RigidSpace) AddWall(w Rect) {
	bb := cp.BB{L: w.MinX, B: w.MinZ, R: w.MaxX, T: w.MaxZ}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	s.space.AddShape(shape)
	s.walls = append(s.walls, shape)
}

func (s *RigidSpace) Remove(b Body) {
	rb, ok := b.(*RigidBody)
	if !ok {
		return
	}
	if _, ok := s.bodies[rb]; !ok {
		return
	}
	s.space.RemoveShape(rb.shape)
	s.space.RemoveBody(rb.body)
	delete(s.bodies, rb)
}

func (s *RigidSpace) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
	for b := range s.bodies {
		b.y, b.vy = integrateVertical(b.y, b.vy, dt)
	}
}

func (b *RigidBody) Position() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, b.y, p.Y}
}

func (b *RigidBody) Velocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, b.vy, v.Y}
}

// SetVelocity commands the floor velocity for the following steps. Setting
// the chipmunk velocity directly would move the body before contacts are
// solved and push it through walls.
func (b *RigidBody) SetVelocity(v mgl64.Vec3) {
	b.command = cp.Vector{X: v.X(), Y: v.Z()}
	b.commanded = true
	b.vy = v.Y()
}
