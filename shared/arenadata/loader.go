package arenadata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names read from an arena TMX file
const (
	GroupWalls  = "Walls"
	GroupSpawns = "Spawns"
)

// LoadArena parses a TMX file into an Arena. One map tile is one arena unit.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if arenaMap.TileWidth <= 0 || arenaMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(arenaMap.Width),
		Depth:  float64(arenaMap.Height),
		Spawns: map[string]mgl64.Vec3{},
	}

	// Map pixels to units, moving the map centre to the origin
	tileW := float64(arenaMap.TileWidth)
	tileH := float64(arenaMap.TileHeight)
	toX := func(px float64) float64 { return px/tileW - arena.Width/2 }
	toZ := func(py float64) float64 { return py/tileH - arena.Depth/2 }

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, Rect{
					MinX: toX(o.X),
					MinZ: toZ(o.Y),
					MaxX: toX(o.X + o.Width),
					MaxZ: toZ(o.Y + o.Height),
				})
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				label := o.Name
				if label == "" {
					label = o.Properties.GetString("actor")
				}
				if label == "" {
					continue
				}
				arena.Spawns[label] = mgl64.Vec3{toX(o.X + o.Width/2), 0, toZ(o.Y + o.Height/2)}
			}
		}
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each one
// and returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
