package bot

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/shared/arenadata"
)

// NewController builds a controller by name: "chaser", "script", "still" or
// the path of a .tengo file. A chaser navigates around the arena's walls when
// arena is not nil.
func NewController(kind string, arena *arenadata.Arena, difficulty cfg.BotDifficulty, attacks cfg.Attacks, seed int64) (Controller, error) {
	switch {
	case kind == "" || kind == "chaser":
		c := NewChaser(difficulty, attacks, seed)
		if arena != nil {
			c.WithNav(NewNavGrid(arena, cfg.Bot.NavCellSize, cfg.Fighter.Radius))
		}
		return c, nil
	case kind == "still":
		return Still{}, nil
	case kind == "script":
		return LoadScript(cfg.Bot.ScriptPath, attacks)
	case strings.HasSuffix(kind, ".tengo"):
		return LoadScript(kind, attacks)
	}
	return nil, fmt.Errorf("unknown bot %q", kind)
}
