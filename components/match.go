package components

import (
	cfg "github.com/automoto/octagon/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	State     cfg.MatchStateID
	Tick      int     // ticks simulated since the match started
	Elapsed   float64 // seconds simulated since the match started
	Winner    ActorID
	HasWinner bool // false while playing and after a double knockout
	EndTick   int
}

var Match = donburi.NewComponentType[MatchData]()
