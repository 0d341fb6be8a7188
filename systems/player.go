package systems

import (
	"log"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoveResult describes what happened during one player update. The swept
// boxes are the resolved candidates, kept for debug drawing.
type MoveResult struct {
	BoxX, BoxY  gamemath.Aabb
	JumpStarted bool // A new jump impulse began this tick
	JumpApplied bool // Vertical velocity was set to the jump force before gravity
	CrateHits   int
}

// UpdatePlayer runs one tick of player movement at simulated time now. The
// steps run in a fixed order; moving any of them changes how jumps feel.
// Must run AFTER UpdateBlocks so collisions see this tick's block positions.
func UpdatePlayer(w donburi.World, dt, now float64) MoveResult {
	e := mustFirst(w, components.Player, "player")
	rect := components.GameRect.Get(mustFirst(w, components.GameRect, "game rect"))

	if gamemath.IsDegenerateStep(dt, cfg.Physics.MinStep) {
		return MoveResult{}
	}

	player := components.Player.Get(e)
	if !player.Alive {
		return MoveResult{}
	}
	physics := components.Physics.Get(e)
	input := components.Input.Get(e)

	var result MoveResult
	jump := GetAction(input, cfg.ActionJump)

	// Jump intent latch
	if jump.Pressed {
		player.IsJumping = true
	}

	// Jump trigger: start now, or buffer the press for a later landing
	var jumpingStart bool
	if jump.JustPressed {
		if physics.OnGround || gamemath.Within(now, player.LastGroundTS, cfg.Player.CoyoteTime) {
			jumpingStart = true
		} else {
			player.JumpBufferTS = now
		}
	} else if physics.OnGround {
		jumpingStart = gamemath.Within(now, player.JumpBufferTS, cfg.Player.JumpBufferTime)
	}

	// Jump impulse, held for the sustain window
	if player.IsJumping && (jumpingStart || gamemath.Before(now, player.RealJumpStartTS, cfg.Player.JumpTimer)) {
		if jumpingStart {
			player.RealJumpStartTS = now
			player.JumpBufferTS = components.Never
			player.LastGroundTS = components.Never
			result.JumpStarted = true
		}
		physics.Velocity.Y = cfg.Player.JumpForce
		result.JumpApplied = true
	}

	// Horizontal intent snaps, no acceleration curve
	switch {
	case input.Current[cfg.ActionLeft]:
		physics.Velocity.X = -cfg.Player.MovementSpeed
	case input.Current[cfg.ActionRight]:
		physics.Velocity.X = cfg.Player.MovementSpeed
	default:
		physics.Velocity.X = 0
	}

	physics.Velocity.Y += cfg.Physics.Gravity * dt

	// Axis-split swept boxes
	dx, dy := physics.Velocity.X*dt, physics.Velocity.Y*dt
	boxX := player.BoundingBox.Translate(dx, 0)
	boxY := player.BoundingBox.Translate(0, dy)

	clampToPlayArea(rect.Bounds, player, physics, &boxX, &boxY)

	for _, be := range blockCandidates(w, e, gamemath.Union(boxX, boxY)) {
		block := components.Block.Get(be)
		pos := components.Position.Get(be).Vec2
		if CollideBlock(block, pos, player, physics, &boxX, &boxY) {
			result.CrateHits++
		}
	}

	// Commit. The half-extent is fixed at spawn; tuning reloads only affect
	// new players.
	center := math.Vec2{X: boxX.Center.X, Y: boxY.Center.Y}
	player.BoundingBox = gamemath.NewAabb(center, player.BoundingBox.HalfExtent)
	if physics.OnGround {
		player.LastGroundTS = now
	}

	if cfg.Debug.LogPlayer {
		log.Printf("t=%.4f pos=(%.2f, %.2f) vel=(%.2f, %.2f) ground=%v jumping=%v",
			now, center.X, center.Y, physics.Velocity.X, physics.Velocity.Y, physics.OnGround, player.IsJumping)
	}

	result.BoxX, result.BoxY = boxX, boxY
	return result
}

// KillPlayer marks the player dead. A dead player is frozen in place; ending
// the session is left to the caller.
func KillPlayer(w donburi.World) {
	e := mustFirst(w, components.Player, "player")
	components.Player.Get(e).Alive = false
}

type firstFinder interface {
	First(w donburi.World) (*donburi.Entry, bool)
}

// mustFirst returns the singleton entry of ct. A missing singleton is a setup
// bug, not a runtime condition.
func mustFirst(w donburi.World, ct firstFinder, what string) *donburi.Entry {
	e, ok := ct.First(w)
	if !ok {
		panic("systems: no " + what + " entity in world")
	}
	return e
}
