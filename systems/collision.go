package systems

import (
	"fmt"
	"log"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// clampToPlayArea resolves the swept boxes against the game rect. X goes
// first and the vertical test reuses the X-resolved box, so a rejected
// horizontal move also shifts what the floor and ceiling test sees.
func clampToPlayArea(bounds gamemath.Aabb, player *components.PlayerData, physics *components.PhysicsData, boxX, boxY *gamemath.Aabb) {
	if !gamemath.ContainsX(bounds, *boxX) {
		*boxX = player.BoundingBox
	}

	physics.OnGround = false

	vertical := boxX.WithCenterY(boxY.Center.Y)
	floor, ceiling := bounds.Min().Y, bounds.Max().Y

	if vertical.Min().Y < floor && physics.Velocity.Y <= 0 {
		*boxY = boxY.WithCenterY(floor + boxY.HalfExtent.Y)
		physics.Velocity.Y = 0
		physics.OnGround = true
	} else if vertical.Max().Y > ceiling {
		*boxY = boxY.WithCenterY(ceiling - boxY.HalfExtent.Y)
	}
}

// BlockFootprint is the full-stop collision box of a block at pos.
func BlockFootprint(pos math.Vec2) gamemath.Aabb {
	return gamemath.NewAabb(pos, cfg.Block.HalfSize)
}

// CrateProbe is the hit detector of a crate: a flat box centered on the
// crate's top edge, wider than the crate itself.
func CrateProbe(pos math.Vec2) gamemath.Aabb {
	center := math.Vec2{X: pos.X, Y: pos.Y + cfg.Block.HalfSize.Y}
	return gamemath.NewAabb(center, cfg.Block.CrateProbeHalfSize)
}

// CollideBlock resolves one block against the player's swept boxes. Crates
// first lose a hit when their probe touches either swept box. Then every block
// acts as a full stop: an intersecting swept box is snapped back to the
// player's pre-move bounds on its axis. Landing on a block's top grounds the
// player and a head bump against its bottom ends the rise. It reports whether
// the block was hit.
func CollideBlock(block *components.BlockData, pos math.Vec2, player *components.PlayerData, physics *components.PhysicsData, boxX, boxY *gamemath.Aabb) bool {
	var hit bool
	switch block.Kind {
	case components.BlockMetal:
	case components.BlockCrate:
		probe := CrateProbe(pos)
		if probe.Intersects(*boxX) || probe.Intersects(*boxY) {
			hit = true
			if block.Hit() && cfg.Debug.LogPlayer {
				log.Printf("crate at (%.1f, %.1f) depleted", pos.X, pos.Y)
			}
		}
	default:
		panic(fmt.Sprintf("systems: unhandled block kind %v", block.Kind))
	}

	resolveFullStop(pos, player, physics, boxX, boxY)
	return hit
}

func resolveFullStop(pos math.Vec2, player *components.PlayerData, physics *components.PhysicsData, boxX, boxY *gamemath.Aabb) {
	footprint := BlockFootprint(pos)

	if footprint.Intersects(*boxX) {
		*boxX = boxX.WithCenterX(player.BoundingBox.Center.X)
	}
	if footprint.Intersects(*boxY) {
		*boxY = boxY.WithCenterY(player.BoundingBox.Center.Y)

		// Only a stop against the block's top or bottom face touches velocity.
		// A block overlapping the player mid-fall is not a surface.
		switch {
		case physics.Velocity.Y <= 0 && footprint.Max().Y <= player.BoundingBox.Min().Y:
			physics.Velocity.Y = 0
			physics.OnGround = true
		case physics.Velocity.Y > 0 && footprint.Min().Y >= player.BoundingBox.Max().Y:
			physics.Velocity.Y = 0
		}
	}
}

// RemoveDepletedBlocks removes every crate whose hits ran out, along with its
// broad-phase proxy. It runs after the collision pass so no query of the
// current tick sees a removed block.
func RemoveDepletedBlocks(w donburi.World) []donburi.Entity {
	var depleted []*donburi.Entry
	components.Block.Each(w, func(e *donburi.Entry) {
		if components.Block.Get(e).Depleted() {
			depleted = append(depleted, e)
		}
	})
	if len(depleted) == 0 {
		return nil
	}

	removed := make([]donburi.Entity, 0, len(depleted))
	for _, e := range depleted {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		removed = append(removed, e.Entity())
		w.Remove(e.Entity())
	}
	return removed
}
