package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/sim"
	"github.com/automoto/cratefall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Seconds a crate flashes after being hit
const crateFlashDuration = 0.25

// PlatformerScene runs one game session. The session is created on the
// first update and closed when the scene is left.
type PlatformerScene struct {
	ecs          *ecs.ECS
	session      *sim.Session
	sceneChanger SceneChanger
	opts         *Options

	frame     sim.Frame
	crateHits int
	lastHits  map[donburi.Entity]uint8
	flashes   map[donburi.Entity]*gween.Tween

	once sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger, opts *Options) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.leave()
		return
	}

	ps.reloadTuning()
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.session = sim.NewSession(ps.opts.Arena)
	ps.frame = ps.session.Frame()
	ps.lastHits = make(map[donburi.Entity]uint8)
	ps.flashes = make(map[donburi.Entity]*gween.Tween)

	ps.ecs = ecs.NewECS(ps.session.World())

	ps.ecs.AddSystem(ps.step)
	ps.ecs.AddSystem(ps.updateFlashes)

	ps.ecs.AddRenderer(layerDefault, ps.drawArena)
	ps.ecs.AddRenderer(layerDefault, ps.drawBlocks)
	ps.ecs.AddRenderer(layerDefault, ps.drawPlayer)
	ps.ecs.AddRenderer(layerDefault, ps.drawDebug)
	ps.ecs.AddRenderer(layerDefault, ps.drawHUD)
}

func (ps *PlatformerScene) step(_ *ecs.ECS) {
	var pressed, retriggered [cfg.ActionCount]bool
	if ps.opts.Input != nil {
		pressed = ps.opts.Input.Poll()
		if r, ok := ps.opts.Input.(systems.Retriggerer); ok {
			retriggered = r.Retriggered()
		}
	}

	frame, ok := ps.session.StepRetriggered(pressed, retriggered, tickSeconds())
	if !ok {
		return
	}
	ps.frame = frame
	ps.crateHits += frame.Move.CrateHits

	// Start a flash on every crate that lost a hit this tick
	for _, b := range frame.Blocks {
		if b.Kind != components.BlockCrate {
			continue
		}
		if prev, seen := ps.lastHits[b.Entity]; seen && b.HitsLeft < prev {
			ps.flashes[b.Entity] = gween.New(1, 0, crateFlashDuration, ease.OutQuad)
		}
		ps.lastHits[b.Entity] = b.HitsLeft
	}
	for _, id := range frame.Removed {
		delete(ps.lastHits, id)
		delete(ps.flashes, id)
	}
}

func (ps *PlatformerScene) updateFlashes(_ *ecs.ECS) {
	for id, tw := range ps.flashes {
		if _, finished := tw.Update(float32(tickSeconds())); finished {
			delete(ps.flashes, id)
		}
	}
}

// flashAlpha returns how white a crate should be drawn, from 0 to 1.
func (ps *PlatformerScene) flashAlpha(id donburi.Entity) float32 {
	tw, ok := ps.flashes[id]
	if !ok {
		return 0
	}
	v, _ := tw.Update(0)
	return v
}

func (ps *PlatformerScene) reloadTuning() {
	if ps.opts.Tuning == nil {
		return
	}
	select {
	case path := <-ps.opts.Tuning.Events:
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		log.Printf("Tuning reloaded from %s", path)
	case err := <-ps.opts.Tuning.Errors:
		log.Printf("Warning: Tuning watcher error: %v", err)
	default:
	}
}

func (ps *PlatformerScene) leave() {
	if ps.session != nil {
		ps.session.Close()
	}
	ps.sceneChanger.ChangeScene(NewHubScene(ps.sceneChanger, ps.opts))
}

func tickSeconds() float64 {
	return 1 / float64(cfg.Physics.TickRate)
}
