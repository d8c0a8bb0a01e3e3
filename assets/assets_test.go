package assets

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBundledCage(t *testing.T) {
	arena, err := LoadArena("arenas/cage.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Width != 20 || arena.Depth != 20 {
		t.Fatalf("cage is %gx%g, want 20x20", arena.Width, arena.Depth)
	}
	if len(arena.Walls) != 4 {
		t.Fatalf("cage has %d walls, want 4", len(arena.Walls))
	}
	if p, _ := arena.Spawn("player"); !p.ApproxEqual(mgl64.Vec3{-2, 0, 0}) {
		t.Errorf("player spawn = %v, want (-2, 0, 0)", p)
	}
	if p, _ := arena.Spawn("ai"); !p.ApproxEqual(mgl64.Vec3{2, 0, 0}) {
		t.Errorf("ai spawn = %v, want (2, 0, 0)", p)
	}

}

func TestBundledArenas(t *testing.T) {
	names, err := ArenaNames()
	if err != nil {
		t.Fatalf("ArenaNames: %v", err)
	}
	if len(names) != 2 || names[0] != "cage" || names[1] != "pillars" {
		t.Fatalf("ArenaNames = %v, want [cage pillars]", names)
	}

	pillars, err := LoadArena(ArenaPath("pillars"))
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if pillars.Width != 16 || len(pillars.Walls) != 8 {
		t.Fatalf("pillars is %g wide with %d walls, want 16 and 8", pillars.Width, len(pillars.Walls))
	}
	if p, _ := pillars.Spawn("ai"); !p.ApproxEqual(mgl64.Vec3{2, 0, 0}) {
		t.Errorf("ai spawn = %v, want (2, 0, 0)", p)
	}
}
