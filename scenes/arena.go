package scenes

import (
	"image/color"
	"log"
	"sort"
	"sync"

	"github.com/automoto/octagon/assets"
	"github.com/automoto/octagon/bot"
	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/hud"
	"github.com/automoto/octagon/match"
	"github.com/automoto/octagon/shared/arenadata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ArenaOptions selects what an ArenaScene sets up.
type ArenaOptions struct {
	Arena      string // bundled arena name, e.g. "cage"
	Bot        string // see bot.NewController
	Difficulty cfg.BotDifficulty
	Seed       int64
	WatchFile  string // reload tuning from this file when it changes
}

// ArenaScene is a player against the bot in one arena.
type ArenaScene struct {
	sceneChanger SceneChanger
	opts         ArenaOptions
	once         sync.Once

	match    *match.Match
	opponent bot.Controller
	bars     [2]*hud.HealthBar
	watcher  *cfg.Watcher
	keys     []string
	rounds   int
}

func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.pollTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.restart()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		as.nextArena()
		return
	}

	dt := 1.0 / float64(ebiten.TPS())
	snap := as.match.Snapshot()
	in := match.Input{
		Player:   heldKeys(as.keys),
		Opponent: as.opponent.Keys(bot.ViewFor(snap, components.Opponent)),
	}
	for _, ev := range as.match.Tick(in, dt) {
		log.Printf("%s lands %s on %s for %d", ev.Attacker, ev.Kind, ev.Defender, ev.Amount)
	}

	for _, id := range []components.ActorID{components.Player, components.Opponent} {
		as.bars[id].Set(as.match.Actor(id).HealthFraction)
		as.bars[id].Update(dt)
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.match == nil {
		return
	}
	snap := as.match.Snapshot()
	v := newView(as.match.Arena())

	drawArena(screen, v, as.match.Arena())
	for _, a := range snap.Actors {
		drawFighter(screen, v, a)
	}
	drawHUD(screen, snap, as.bars, as.match.Arena().Name, as.rounds)
	if snap.State == cfg.MatchStateFinished {
		drawResult(screen, snap)
	}
}

func (as *ArenaScene) configure() {
	arena, err := as.loadArena()
	if err != nil {
		log.Printf("Warning: %v, using the default arena", err)
		arena = match.DefaultArena()
	}
	as.match = match.New(match.WithArena(arena))
	as.keys = cfg.Input.BoundKeys()
	sort.Strings(as.keys)
	as.newOpponent()
	as.resetBars()

	if as.opts.WatchFile != "" {
		w, err := cfg.NewFileWatcher(as.opts.WatchFile)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", as.opts.WatchFile, err)
		} else {
			as.watcher = w
			log.Printf("Watching %s for tuning changes", as.opts.WatchFile)
		}
	}
}

func (as *ArenaScene) loadArena() (*arenadata.Arena, error) {
	path := cfg.Arena.DefaultMap
	if as.opts.Arena != "" {
		path = assets.ArenaPath(as.opts.Arena)
	}
	return assets.LoadArena(path)
}

func (as *ArenaScene) newOpponent() {
	c, err := bot.NewController(as.opts.Bot, as.match.Arena(), as.opts.Difficulty, as.match.Attacks(), as.opts.Seed+int64(as.rounds))
	if err != nil {
		log.Printf("Warning: %v, falling back to the chaser", err)
		c = bot.NewChaser(as.opts.Difficulty, as.match.Attacks(), as.opts.Seed)
	}
	as.opponent = c
}

func (as *ArenaScene) resetBars() {
	for i := range as.bars {
		as.bars[i] = hud.NewHealthBar(cfg.HUD.DrainSeconds)
	}
}

func (as *ArenaScene) restart() {
	as.rounds++
	as.match.Reset()
	as.newOpponent()
	as.resetBars()
}

// nextArena moves to the next bundled arena in name order.
func (as *ArenaScene) nextArena() {
	names, err := assets.ArenaNames()
	if err != nil || len(names) == 0 {
		log.Printf("Warning: Could not list arenas: %v", err)
		return
	}
	current := as.match.Arena().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	as.closeWatcher()

	opts := as.opts
	opts.Arena = next
	as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, opts))
}

// pollTuning applies changed tuning files. They take effect on the next
// restart since a running match keeps the values it started with.
func (as *ArenaScene) pollTuning() {
	if as.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-as.watcher.Events:
			if !ok {
				as.watcher = nil
				return
			}
			t, err := cfg.LoadTuning(path)
			if err != nil {
				log.Printf("Warning: %v", err)
				continue
			}
			t.Apply()
			log.Printf("Tuning reloaded from %s, press R to restart with it", path)
		case err, ok := <-as.watcher.Errors:
			if !ok {
				as.watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (as *ArenaScene) closeWatcher() {
	if as.watcher != nil {
		_ = as.watcher.Close()
		as.watcher = nil
	}
}
