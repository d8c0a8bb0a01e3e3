package systems

import (
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/tags"
	"github.com/yohamta/donburi"
)

// UpdateMatch advances the match clock and ends the match once a fighter is
// knocked out. A finished match stays finished; both fighters down on the
// same tick is a draw.
func UpdateMatch(w donburi.World, dt float64) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	match.Tick++
	match.Elapsed += dt

	if match.State != cfg.MatchStatePlaying {
		return
	}

	var down []components.ActorID
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			down = append(down, components.Actor.Get(e).ID)
		}
	})
	if len(down) == 0 {
		return
	}

	match.State = cfg.MatchStateFinished
	match.EndTick = match.Tick
	if len(down) == 1 {
		match.Winner = down[0].Other()
		match.HasWinner = true
	}
}

// IsMatchFinished returns true once a fighter has been knocked out
func IsMatchFinished(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStateFinished
}
