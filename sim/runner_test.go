package sim

import (
	"testing"
	"time"

	"github.com/automoto/octagon/bot"
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/match"
	"github.com/automoto/octagon/physics"
)

func newMatch() *match.Match {
	return match.New(
		match.WithSpace(func() physics.Space { return physics.NewDirectSpace(20, 20, 1) }),
		match.WithAttacks(cfg.DefaultAttacks()),
	)
}

func TestBotsFightToKnockout(t *testing.T) {
	m := newMatch()
	r := NewRunner(m,
		bot.Still{},
		bot.NewChaser(cfg.BotDifficultyHard, m.Attacks(), 42),
		1.0/60, false)

	res := r.RunFor(60 * 120)
	if !res.Finished {
		t.Fatalf("no knockout: %s", res)
	}
	if !res.HasWinner || res.Winner != components.Opponent {
		t.Fatalf("the idle player should lose: %s", res)
	}
	if res.Health[components.Player] != 0 {
		t.Fatalf("player health = %d, want 0", res.Health[components.Player])
	}
	if res.Hits[components.Player] != 0 || res.Hits[components.Opponent] == 0 {
		t.Fatalf("unexpected hit counts %v", res.Hits)
	}
	if res.Damage[components.Opponent] < 100 {
		t.Fatalf("opponent dealt %d damage, want at least 100", res.Damage[components.Opponent])
	}
}

func TestRunForStopsAtLimit(t *testing.T) {
	r := NewRunner(newMatch(), bot.Still{}, bot.Still{}, 1.0/60, false)
	res := r.RunFor(30)
	if res.Ticks != 30 || res.Finished {
		t.Fatalf("result = %s, want 30 ticks and no knockout", res)
	}
	if res.Health != [2]int{100, 100} {
		t.Fatalf("health = %v, want full", res.Health)
	}
}

func TestGameLoopStops(t *testing.T) {
	r := NewRunner(newMatch(), bot.Still{}, bot.Still{}, 1.0/60, false)
	loop := NewGameLoop(r, 1000, 1<<30)

	done := make(chan Result, 1)
	go func() { done <- loop.Run() }()
	time.Sleep(20 * time.Millisecond)
	if !loop.Running() {
		t.Fatal("loop should be running")
	}
	loop.Stop()

	select {
	case res := <-done:
		if res.Finished {
			t.Fatalf("idle fighters should not finish: %s", res)
		}
		if loop.Running() {
			t.Fatal("loop still reports running after Stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopEndsAtMaxTicks(t *testing.T) {
	r := NewRunner(newMatch(), bot.Still{}, bot.Still{}, 1.0/60, false)
	loop := NewGameLoop(r, 1000, 5)
	if loop.Running() {
		t.Fatal("loop running before Run")
	}
	res := loop.Run()
	if res.Ticks != 5 {
		t.Fatalf("ticks = %d, want 5", res.Ticks)
	}
	if loop.Running() {
		t.Fatal("loop still running after its last tick")
	}
}
