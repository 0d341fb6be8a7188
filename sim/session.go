// Package sim drives the fixed-timestep simulation: one Session per game,
// stepped once per tick with that tick's input.
package sim

import (
	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/automoto/cratefall/systems"
	"github.com/automoto/cratefall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type options struct {
	metalSpawn *math.Vec2
	crateHits  uint8
}

// Option configures a Session.
type Option func(*options)

// WithMetalSpawn sets where the metal block appears on the first tick. nil
// disables the spawn.
func WithMetalSpawn(pos *math.Vec2) Option {
	return func(o *options) {
		if pos == nil {
			o.metalSpawn = nil
			return
		}
		p := *pos
		o.metalSpawn = &p
	}
}

// WithCrateHits sets the hit count of crates whose level entry has none.
func WithCrateHits(hits uint8) Option {
	return func(o *options) {
		o.crateHits = hits
	}
}

// Session owns the world of one game, from entering the game screen to
// leaving it.
type Session struct {
	world      donburi.World
	player     *donburi.Entry
	clock      *donburi.Entry
	metalSpawn *math.Vec2
}

// DefaultArena returns an empty arena built from the configured defaults.
func DefaultArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name:        "default",
		Center:      leveldata.Point{X: cfg.Arena.Center.X, Y: cfg.Arena.Center.Y},
		Width:       cfg.Arena.HalfSize.X * 2,
		Height:      cfg.Arena.HalfSize.Y * 2,
		PlayerSpawn: leveldata.Point{X: cfg.Arena.Center.X, Y: cfg.Arena.Center.Y},
	}
}

// NewSession builds a world for arena. A nil arena uses DefaultArena.
func NewSession(arena *leveldata.Arena, opts ...Option) *Session {
	spawn := cfg.Block.MetalSpawn
	o := options{
		metalSpawn: &spawn,
		crateHits:  cfg.Block.DefaultCrateHits,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if arena == nil {
		arena = DefaultArena()
	}

	w := donburi.NewWorld()
	player := factory.CreateLevel(w, arena, o.crateHits)
	clock, _ := components.Session.First(w)

	return &Session{
		world:      w,
		player:     player,
		clock:      clock,
		metalSpawn: o.metalSpawn,
	}
}

// World exposes the underlying world for inspection. Mutating it between
// steps is allowed but bypasses the tick order.
func (s *Session) World() donburi.World {
	s.mustOpen()
	return s.world
}

// Step advances the simulation by dt with the given held actions. A
// degenerate dt leaves the world untouched and reports false.
func (s *Session) Step(pressed [cfg.ActionCount]bool, dt float64) (Frame, bool) {
	return s.StepRetriggered(pressed, [cfg.ActionCount]bool{}, dt)
}

// StepRetriggered is Step for resolvers that report fresh presses of actions
// that were already held through another key.
func (s *Session) StepRetriggered(pressed, retriggered [cfg.ActionCount]bool, dt float64) (Frame, bool) {
	s.mustOpen()

	if gamemath.IsDegenerateStep(dt, cfg.Physics.MinStep) {
		return s.Frame(), false
	}

	clock := components.Session.Get(s.clock)
	clock.Now += dt
	clock.Tick++

	if !clock.MetalSpawned {
		clock.MetalSpawned = true
		if s.metalSpawn != nil {
			factory.CreateBlock(s.world, components.BlockMetal, s.metalSpawn.X, s.metalSpawn.Y, 0)
		}
	}

	systems.AdvanceInputRetriggered(components.Input.Get(s.player), pressed, retriggered)

	// Blocks fall before the player moves, so collisions see this tick's
	// block positions.
	systems.UpdateBlocks(s.world, dt)
	systems.UpdateObjects(s.world)

	move := systems.UpdatePlayer(s.world, dt, clock.Now)

	removed := systems.RemoveDepletedBlocks(s.world)
	systems.UpdateObjects(s.world)

	frame := s.Frame()
	frame.Move = move
	frame.Removed = removed
	return frame, true
}

// Close removes every entity of the session. Step panics afterwards.
func (s *Session) Close() {
	if s.world == nil {
		return
	}

	var entries []*donburi.Entry
	collect := func(e *donburi.Entry) { entries = append(entries, e) }
	components.Block.Each(s.world, collect)
	components.Player.Each(s.world, collect)
	components.Collider.Each(s.world, collect)
	components.GameRect.Each(s.world, collect)
	components.Space.Each(s.world, collect)
	components.Session.Each(s.world, collect)

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		s.world.Remove(e.Entity())
	}

	s.world = nil
	s.player = nil
	s.clock = nil
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	return s.world == nil
}

func (s *Session) mustOpen() {
	if s.world == nil {
		panic("sim: session is closed")
	}
}
