package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/octagon/shared/arenadata"
)

var (
	//go:embed arenas
	Arenas embed.FS
)

// LoadArena loads an arena bundled with the binary, e.g. "arenas/cage.tmx".
func LoadArena(path string) (*arenadata.Arena, error) {
	arena, err := arenadata.LoadArena(Arenas, path)
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}
	return arena, nil
}

// ArenaNames lists the bundled arenas.
func ArenaNames() ([]string, error) {
	_, names, err := arenadata.LoadAllArenas(Arenas, "arenas")
	return names, err
}

// ArenaPath returns the bundled path of a named arena.
func ArenaPath(name string) string {
	return "arenas/" + name + ".tmx"
}
