package sim

import (
	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/automoto/cratefall/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Frame is a read-only snapshot of the world after a tick, for renderers and
// tests.
type Frame struct {
	Tick   uint64
	Now    float64
	Bounds gamemath.Aabb
	Player PlayerView
	Blocks []BlockView

	Colliders []ColliderView

	Move    systems.MoveResult // Zero when no tick ran
	Removed []donburi.Entity   // Crates destroyed this tick
}

type PlayerView struct {
	Box       gamemath.Aabb
	Velocity  math.Vec2
	OnGround  bool
	IsJumping bool
	Alive     bool
}

type BlockView struct {
	Entity   donburi.Entity
	Kind     components.BlockKind
	Position math.Vec2
	HitsLeft uint8
}

type ColliderView struct {
	Trigger components.ColliderTrigger
	Bounds  gamemath.Aabb
}

// Footprint is the block's collision box.
func (b BlockView) Footprint() gamemath.Aabb {
	return systems.BlockFootprint(b.Position)
}

// Probe is the crate hit detector. ok is false for metal blocks.
func (b BlockView) Probe() (probe gamemath.Aabb, ok bool) {
	if b.Kind != components.BlockCrate {
		return gamemath.Aabb{}, false
	}
	return systems.CrateProbe(b.Position), true
}

// Frame snapshots the current state without stepping.
func (s *Session) Frame() Frame {
	s.mustOpen()

	clock := components.Session.Get(s.clock)
	player := components.Player.Get(s.player)
	physics := components.Physics.Get(s.player)

	f := Frame{
		Tick: clock.Tick,
		Now:  clock.Now,
		Player: PlayerView{
			Box:       player.BoundingBox,
			Velocity:  physics.Velocity,
			OnGround:  physics.OnGround,
			IsJumping: player.IsJumping,
			Alive:     player.Alive,
		},
	}
	if e, ok := components.GameRect.First(s.world); ok {
		f.Bounds = components.GameRect.Get(e).Bounds
	}

	components.Block.Each(s.world, func(e *donburi.Entry) {
		block := components.Block.Get(e)
		f.Blocks = append(f.Blocks, BlockView{
			Entity:   e.Entity(),
			Kind:     block.Kind,
			Position: components.Position.Get(e).Vec2,
			HitsLeft: block.HitsLeft,
		})
	})
	components.Collider.Each(s.world, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		f.Colliders = append(f.Colliders, ColliderView{Trigger: c.Trigger, Bounds: c.Bounds})
	})
	return f
}

// Block returns the view of the block with entity id, if it still exists.
func (f Frame) Block(id donburi.Entity) (BlockView, bool) {
	for _, b := range f.Blocks {
		if b.Entity == id {
			return b, true
		}
	}
	return BlockView{}, false
}
