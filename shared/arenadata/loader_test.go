package arenadata

import (
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

const ringTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="160" height="16"/>
  <object id="2" x="80" y="64" width="0" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="3" name="player" x="32" y="64"/>
  <object id="4" x="128" y="64">
   <properties>
    <property name="actor" value="ai"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/ring.tmx": {Data: []byte(ringTMX)}}

	arena, err := LoadArena(fsys, "arenas/ring.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if arena.Name != "ring" || arena.Width != 10 || arena.Depth != 8 {
		t.Fatalf("arena = %s %gx%g, want ring 10x8", arena.Name, arena.Width, arena.Depth)
	}

	if len(arena.Walls) != 1 {
		t.Fatalf("got %d walls, want 1 (zero width wall skipped)", len(arena.Walls))
	}
	want := Rect{MinX: -5, MinZ: -4, MaxX: 5, MaxZ: -3}
	if arena.Walls[0] != want {
		t.Fatalf("wall = %+v, want %+v", arena.Walls[0], want)
	}

	spawns := map[string]mgl64.Vec3{
		"player": {-3, 0, 0},
		"ai":     {3, 0, 0},
	}
	for label, want := range spawns {
		got, ok := arena.Spawn(label)
		if !ok {
			t.Fatalf("missing spawn %s", label)
		}
		if !got.ApproxEqualThreshold(want, 1e-9) {
			t.Errorf("spawn %s = %v, want %v", label, got, want)
		}
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "arenas/none.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/ring.tmx":  {Data: []byte(ringTMX)},
		"arenas/cage.tmx":  {Data: []byte(ringTMX)},
		"arenas/notes.txt": {Data: []byte("not an arena")},
	}
	arenas, names, err := LoadAllArenas(fsys, "arenas")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "cage" || names[1] != "ring" {
		t.Fatalf("names = %v, want [cage ring]", names)
	}
	if arenas["cage"].Name != "cage" {
		t.Fatalf("arena keyed under the wrong name: %+v", arenas["cage"])
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "arenas"); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}

func TestNilArenaHasNoSpawns(t *testing.T) {
	var a *Arena
	if _, ok := a.Spawn("player"); ok {
		t.Fatal("nil arena reported a spawn")
	}
}
