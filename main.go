package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/fonts"
	"github.com/automoto/cratefall/input/keyboard"
	"github.com/automoto/cratefall/levels"
	"github.com/automoto/cratefall/scenes"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/automoto/cratefall/systems"
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

func NewGame(opts *scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipHub {
		g.scene = scenes.NewPlatformerScene(g, opts)
	} else {
		g.scene = scenes.NewHubScene(g, opts)
	}

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
	level := flag.String("level", "", "Path to a TMX level (empty = built-in arena)")
	tuning := flag.String("tuning", "", "Path to a YAML tuning file, reloaded on change")
	flag.BoolVar(&config.Debug.LogPlayer, "debug-log", false, "Log player state every tick")
	flag.BoolVar(&config.Debug.DrawBoxes, "debug-boxes", false, "Draw swept boxes and crate probes")
	flag.BoolVar(&config.Debug.SkipHub, "skip-hub", false, "Start the game without the hub screen")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := &scenes.Options{}

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		watcher, err := config.NewTuningWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			opts.Tuning = watcher
		}
	}

	arena, err := loadArena(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	opts.Arena = arena

	// Initialize persistence and load saved key bindings
	if err := systems.InitPersistence("cratefall"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	bindings, err := systems.LoadBindings()
	if err != nil {
		log.Printf("Warning: Could not load key bindings: %v", err)
	}
	kb, err := keyboard.New(bindings)
	if err != nil {
		log.Printf("Warning: Saved key bindings are invalid, using defaults: %v", err)
		bindings = config.DefaultActionMap()
		kb, err = keyboard.New(bindings)
		if err != nil {
			log.Fatalf("Default key bindings are invalid: %v", err)
		}
	}
	opts.Bindings = bindings
	opts.Input = kb

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cratefall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Physics.TickRate)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}

func loadArena(path string) (*leveldata.Arena, error) {
	if path == "" {
		return leveldata.LoadArena(levels.FS, levels.Default)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
