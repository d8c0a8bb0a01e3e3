// Package sim runs matches without a window, with bots on both sides.
package sim

import (
	"fmt"
	"log"

	"github.com/automoto/octagon/bot"
	"github.com/automoto/octagon/components"
	"github.com/automoto/octagon/match"
)

// Result summarises a finished or abandoned run.
type Result struct {
	Ticks     int
	Finished  bool
	Winner    components.ActorID
	HasWinner bool
	Health    [2]int // indexed by ActorID
	Hits      [2]int // hits landed by each fighter
	Damage    [2]int // damage dealt by each fighter
}

func (r Result) String() string {
	outcome := "no knockout"
	switch {
	case r.Finished && r.HasWinner:
		outcome = r.Winner.String() + " wins"
	case r.Finished:
		outcome = "double knockout"
	}
	return fmt.Sprintf("%s after %d ticks (player %d hp, %d hits; ai %d hp, %d hits)",
		outcome, r.Ticks,
		r.Health[components.Player], r.Hits[components.Player],
		r.Health[components.Opponent], r.Hits[components.Opponent])
}

// Runner steps one match with a controller for each fighter.
type Runner struct {
	match    *match.Match
	player   bot.Controller
	opponent bot.Controller
	dt       float64
	verbose  bool

	result Result
}

// NewRunner creates a runner advancing dt seconds per step. With verbose set
// every damage event is logged.
func NewRunner(m *match.Match, player, opponent bot.Controller, dt float64, verbose bool) *Runner {
	return &Runner{
		match:    m,
		player:   player,
		opponent: opponent,
		dt:       dt,
		verbose:  verbose,
	}
}

// Step advances the match by one tick and reports whether it is over.
func (r *Runner) Step() bool {
	snap := r.match.Snapshot()
	in := match.Input{
		Player:   r.player.Keys(bot.ViewFor(snap, components.Player)),
		Opponent: r.opponent.Keys(bot.ViewFor(snap, components.Opponent)),
	}

	for _, ev := range r.match.Tick(in, r.dt) {
		r.result.Hits[ev.Attacker]++
		r.result.Damage[ev.Attacker] += ev.Amount
		if r.verbose {
			log.Printf("tick %d: %s %s %s for %d", r.result.Ticks+1, ev.Attacker, ev.Kind, ev.Defender, ev.Amount)
		}
	}
	r.result.Ticks++
	return r.match.Finished()
}

// RunFor steps until the match ends or maxTicks have run.
func (r *Runner) RunFor(maxTicks int) Result {
	for r.result.Ticks < maxTicks {
		if r.Step() {
			break
		}
	}
	return r.Result()
}

// Result returns the outcome so far.
func (r *Runner) Result() Result {
	res := r.result
	res.Finished = r.match.Finished()
	res.Winner, res.HasWinner = r.match.Winner()
	for _, id := range []components.ActorID{components.Player, components.Opponent} {
		res.Health[id] = r.match.Actor(id).Health
	}
	return res
}
