// Command sim runs bot-against-bot matches without a window and reports the
// results. Flags default to SIM_* environment variables, which may also come
// from a .env file.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/automoto/octagon/assets"
	"github.com/automoto/octagon/bot"
	"github.com/automoto/octagon/components"
	"github.com/automoto/octagon/config"
	"github.com/automoto/octagon/match"
	"github.com/automoto/octagon/sim"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Warning: %v", err)
	}

	matches := flag.Int("matches", config.EnvInt("SIM_MATCHES", 10), "Number of matches to run")
	maxTicks := flag.Int("ticks", config.EnvInt("SIM_TICKS", 60*180), "Tick limit per match")
	tickRate := flag.Int("tickrate", config.EnvInt("SIM_TICKRATE", 0), "Ticks per second in real time (0 = as fast as possible)")
	arena := flag.String("arena", config.EnvString("SIM_ARENA", "cage"), "Bundled arena name")
	playerBot := flag.String("player", config.EnvString("SIM_PLAYER_BOT", "chaser"), "Player controller")
	opponentBot := flag.String("opponent", config.EnvString("SIM_OPPONENT_BOT", "script"), "Opponent controller")
	difficulty := flag.String("difficulty", config.EnvString("SIM_DIFFICULTY", "normal"), "Bot difficulty: easy, normal or hard")
	tuning := flag.String("tuning", config.EnvString("SIM_TUNING", ""), "Tuning YAML file")
	body := flag.String("body", config.EnvString("SIM_BODY", string(config.Physics.Body)), "Movement body: rigid or direct")
	seed := flag.Int64("seed", int64(config.EnvInt("SIM_SEED", int(config.Bot.Seed))), "Base random seed")
	verbose := flag.Bool("v", config.EnvString("SIM_VERBOSE", "") != "", "Log every hit")
	flag.Parse()

	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}
	switch config.BodyKindID(*body) {
	case config.BodyRigid, config.BodyDirect:
		config.Physics.Body = config.BodyKindID(*body)
	default:
		log.Fatalf("Unknown body %q", *body)
	}
	if *tuning != "" {
		t, err := config.LoadTuning(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	a, err := assets.LoadArena(assets.ArenaPath(*arena))
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	m := match.New(match.WithArena(a))

	var stopping atomic.Bool
	var mu sync.Mutex
	var loop *sim.GameLoop

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping after the current match...")
		stopping.Store(true)
		mu.Lock()
		if loop != nil && loop.Running() {
			loop.Stop()
		}
		loop = nil
		mu.Unlock()
	}()

	dt := 1.0 / float64(config.C.TickRate)
	var wins [2]int
	var draws, timeouts, played int
	for i := 0; i < *matches && !stopping.Load(); i++ {
		if i > 0 {
			m.Reset()
		}
		matchSeed := *seed + int64(i)
		player, err := bot.NewController(*playerBot, a, diff, m.Attacks(), matchSeed)
		if err != nil {
			log.Fatalf("Failed to create player bot: %v", err)
		}
		opponent, err := bot.NewController(*opponentBot, a, diff, m.Attacks(), matchSeed+1)
		if err != nil {
			log.Fatalf("Failed to create opponent bot: %v", err)
		}

		runner := sim.NewRunner(m, player, opponent, dt, *verbose)
		var res sim.Result
		if *tickRate > 0 {
			mu.Lock()
			loop = sim.NewGameLoop(runner, *tickRate, *maxTicks)
			l := loop
			mu.Unlock()
			res = l.Run()
		} else {
			res = runner.RunFor(*maxTicks)
		}

		played++
		switch {
		case !res.Finished:
			timeouts++
		case res.HasWinner:
			wins[res.Winner]++
		default:
			draws++
		}
		log.Printf("Match %d: %s", i+1, res)
	}

	log.Printf("%d matches: %s (%s) %d, %s (%s) %d, %d draws, %d timeouts",
		played,
		components.Player, *playerBot, wins[components.Player],
		components.Opponent, *opponentBot, wins[components.Opponent],
		draws, timeouts)
}
