package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func spaces() map[string]func() Space {
	return map[string]func() Space{
		"rigid":  func() Space { return NewRigidSpace(10, 1) },
		"direct": func() Space { return NewDirectSpace(20, 20, 1) },
	}
}

func TestBodyFollowsCommandedVelocity(t *testing.T) {
	for name, newSpace := range spaces() {
		t.Run(name, func(t *testing.T) {
			space := newSpace()
			body := space.NewBody(mgl64.Vec3{-2, 0, 0}, 0.4)
			body.SetVelocity(mgl64.Vec3{5, 0, -5})
			for i := 0; i < 60; i++ {
				space.Step(1.0 / 60)
			}
			pos := body.Position()
			// Rigid bodies pick up a new command one step late.
			if math.Abs(pos.X()-3) > 0.1 || math.Abs(pos.Z()+5) > 0.1 {
				t.Fatalf("position after one second = %v, want about (3, 0, -5)", pos)
			}
			if pos.Y() != 0 {
				t.Fatalf("body left the floor: y = %g", pos.Y())
			}
		})
	}
}

func TestBodyStopsAtWall(t *testing.T) {
	directions := map[string]mgl64.Vec3{
		"east":  {5, 0, 0},
		"west":  {-5, 0, 0},
		"north": {0, 0, -5},
		"south": {0, 0, 5},
		"ne":    {5, 0, -5},
	}
	for name, newSpace := range spaces() {
		for dir, v := range directions {
			t.Run(name+"/"+dir, func(t *testing.T) {
				space := newSpace()
				for _, w := range BoundaryWalls(20, 20, 0.5) {
					space.AddWall(w)
				}
				body := space.NewBody(mgl64.Vec3{}, 0.4)
				// Locomotion re-commands the velocity every tick.
				for i := 0; i < 600; i++ {
					body.SetVelocity(v)
					space.Step(1.0 / 60)
				}
				pos := body.Position()
				if math.Abs(pos.X()) > 10 || math.Abs(pos.Z()) > 10 {
					t.Fatalf("body left the arena: %v", pos)
				}
				if pos.Sub(mgl64.Vec3{}).Len() < 9 {
					t.Fatalf("body stopped early at %v", pos)
				}
			})
		}
	}
}

func TestRigidFightersBlockEachOther(t *testing.T) {
	space := NewRigidSpace(10, 1)
	a := space.NewBodyWithMass(mgl64.Vec3{-1, 0, 0}, 0.4, 70)
	b := space.NewBodyWithMass(mgl64.Vec3{1, 0, 0}, 0.4, 70)
	for i := 0; i < 120; i++ {
		a.SetVelocity(mgl64.Vec3{5, 0, 0})
		b.SetVelocity(mgl64.Vec3{-5, 0, 0})
		space.Step(1.0 / 60)
	}
	ax, bx := a.Position().X(), b.Position().X()
	if ax >= bx {
		t.Fatalf("fighters passed through each other: a at %g, b at %g", ax, bx)
	}
	// Chipmunk tolerates a small overlap (collision slop) between resting shapes.
	if gap := bx - ax; gap < 0.6 {
		t.Fatalf("fighters overlap: centres %g apart, radii sum to 0.8", gap)
	}
}

func TestSpawnPositionIsExact(t *testing.T) {
	for name, newSpace := range spaces() {
		t.Run(name, func(t *testing.T) {
			space := newSpace()
			for _, p := range []mgl64.Vec3{{2, 0, 0}, {-2, 0, 0}, {0.3, 0, -7.1}} {
				if got := space.NewBody(p, 0.4).Position(); got != p {
					t.Fatalf("spawned at %v, reads back %v", p, got)
				}
			}
		})
	}
}

func TestVerticalVelocityLands(t *testing.T) {
	for name, newSpace := range spaces() {
		t.Run(name, func(t *testing.T) {
			space := newSpace()
			body := space.NewBody(mgl64.Vec3{0, 1, 0}, 0.4)
			body.SetVelocity(mgl64.Vec3{0, -2, 0})
			for i := 0; i < 60; i++ {
				space.Step(1.0 / 60)
			}
			if y := body.Position().Y(); y != 0 {
				t.Fatalf("y = %g, want 0", y)
			}
			if vy := body.Velocity().Y(); vy != 0 {
				t.Fatalf("vy = %g after landing, want 0", vy)
			}
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	for name, newSpace := range spaces() {
		t.Run(name, func(t *testing.T) {
			space := newSpace()
			body := space.NewBody(mgl64.Vec3{}, 0.4)
			space.Remove(body)
			space.Remove(body)
			space.Step(1.0 / 60)
		})
	}
}

func TestBoundaryWallsEncloseFloor(t *testing.T) {
	walls := BoundaryWalls(20, 20, 0.5)
	if len(walls) != 4 {
		t.Fatalf("got %d walls, want 4", len(walls))
	}
	for _, w := range walls {
		if w.Width() <= 0 || w.Depth() <= 0 {
			t.Fatalf("degenerate wall %+v", w)
		}
		// No wall may overlap the open floor.
		if w.MinX < 10 && w.MaxX > -10 && w.MinZ < 10 && w.MaxZ > -10 {
			t.Fatalf("wall %+v overlaps the floor", w)
		}
	}
}
