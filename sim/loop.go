package sim

import (
	"log"
	"sync/atomic"
	"time"
)

// GameLoop steps a Runner in real time on a ticker.
type GameLoop struct {
	runner   *Runner
	tickRate int
	maxTicks int
	running  atomic.Bool
	stopChan chan struct{}
}

func NewGameLoop(runner *Runner, tickRate, maxTicks int) *GameLoop {
	return &GameLoop{
		runner:   runner,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the match ends, maxTicks have run or Stop is called.
func (g *GameLoop) Run() Result {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return g.runner.Result()
		case <-ticker.C:
			if g.runner.Step() || g.runner.result.Ticks >= g.maxTicks {
				g.running.Store(false)
				return g.runner.Result()
			}
		}
	}
}

// Running reports whether Run is between its first and last tick.
func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
