package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/input"
	"github.com/automoto/cratefall/levels"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/automoto/cratefall/sim"
)

func main() {
	ticks := flag.Uint64("ticks", 600, "Number of ticks to simulate")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = configured rate)")
	script := flag.String("script", "", `Input script, e.g. "right:1-30,jump:10"`)
	realtime := flag.Bool("realtime", false, "Pace ticks in real time instead of running flat out")
	level := flag.String("level", "", "Path to a TMX level (empty = built-in arena)")
	tuning := flag.String("tuning", "", "Path to a YAML tuning file")
	logPlayer := flag.Bool("log", false, "Log player state every tick")
	flag.Parse()

	if *tuning != "" {
		if err := cfg.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *tickRate > 0 {
		cfg.Physics.TickRate = *tickRate
	}
	cfg.Debug.LogPlayer = *logPlayer

	arena, err := loadArena(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	in, err := input.ParseScript(*script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	session := sim.NewSession(arena)
	defer session.Close()

	removed := 0
	step := func(dt float64) bool {
		frame, ok := session.Step(in.Poll(), dt)
		if !ok {
			return false
		}
		removed += len(frame.Removed)
		p := frame.Player
		log.Printf("tick=%d pos=(%.3f, %.3f) vel=(%.3f, %.3f) ground=%v crates_hit=%d removed=%d",
			frame.Tick, p.Box.Center.X, p.Box.Center.Y, p.Velocity.X, p.Velocity.Y,
			p.OnGround, frame.Move.CrateHits, len(frame.Removed))
		return frame.Tick < *ticks
	}

	log.Printf("Simulating %q for %d ticks at %d ticks/second", arena.Name, *ticks, cfg.Physics.TickRate)

	if *realtime {
		loop := sim.NewLoop(cfg.Physics.TickRate, step)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Stopping simulation...")
			loop.Stop()
		}()

		loop.Run()
	} else {
		dt := 1 / float64(cfg.Physics.TickRate)
		for *ticks > 0 && step(dt) {
		}
	}

	log.Printf("Done: %d crates destroyed", removed)
}

func loadArena(path string) (*leveldata.Arena, error) {
	if path == "" {
		return leveldata.LoadArena(levels.FS, levels.Default)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
