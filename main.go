package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/octagon/config"
	"github.com/automoto/octagon/fonts"
	"github.com/automoto/octagon/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.ArenaOptions) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	arena := flag.String("arena", "cage", "Bundled arena name")
	botKind := flag.String("bot", "chaser", "Opponent: chaser, script, still or a .tengo path")
	difficulty := flag.String("difficulty", "normal", "Opponent difficulty: easy, normal or hard")
	tuning := flag.String("tuning", "", "Tuning YAML file (defaults to the built-in values)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	seed := flag.Int64("seed", config.Bot.Seed, "Opponent random seed")
	flag.Parse()

	diff, ok := config.ParseBotDifficulty(*difficulty)
	if !ok {
		log.Fatalf("Unknown difficulty %q", *difficulty)
	}

	if *tuning != "" {
		t, err := config.LoadTuning(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
		log.Printf("Loaded tuning from %s", *tuning)
	}

	opts := scenes.ArenaOptions{
		Arena:      *arena,
		Bot:        *botKind,
		Difficulty: diff,
		Seed:       *seed,
	}
	if *watch {
		opts.WatchFile = config.TuningFile
		if *tuning != "" {
			opts.WatchFile = *tuning
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("octagon")
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
