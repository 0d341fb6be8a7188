package factory

import (
	"fmt"
	"log"
	stdmath "math"

	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel builds the world for arena: session clock, play area, broad
// phase, player, initial blocks and trigger colliders. Crates without a hit count get
// defaultHits. The arena is assumed to come from leveldata, so an unknown
// block kind or a hit count outside 0..255 panics.
func CreateLevel(w donburi.World, arena *leveldata.Arena, defaultHits uint8) *donburi.Entry {
	CreateSession(w)

	halfW, halfH := arena.HalfSize()
	center := math.Vec2{X: arena.Center.X, Y: arena.Center.Y}
	rect := CreateGameRect(w, center, math.Vec2{X: halfW, Y: halfH})
	CreateSpace(w, components.GameRect.Get(rect).Bounds)

	player := CreatePlayer(w, arena.PlayerSpawn.X, arena.PlayerSpawn.Y)

	for _, b := range arena.Blocks {
		kind, err := components.ParseBlockKind(b.Kind)
		if err != nil {
			panic(err)
		}
		if b.Hits < 0 || b.Hits > stdmath.MaxUint8 {
			panic(fmt.Sprintf("factory: block at (%g, %g): hits %d out of range", b.X, b.Y, b.Hits))
		}
		hits := uint8(b.Hits)
		if hits == 0 {
			hits = defaultHits
		}
		CreateBlock(w, kind, b.X, b.Y, hits)
	}

	for _, c := range arena.Colliders {
		trigger, err := components.ParseColliderTrigger(c.Trigger)
		if err != nil {
			panic(err)
		}
		CreateCollider(w, trigger, math.Vec2{X: c.X, Y: c.Y}, math.Vec2{X: c.Width / 2, Y: c.Height / 2})
	}

	log.Printf("level %q: %gx%g, %d blocks, %d colliders, spawn (%g, %g)",
		arena.Name, arena.Width, arena.Height, len(arena.Blocks), len(arena.Colliders), arena.PlayerSpawn.X, arena.PlayerSpawn.Y)

	return player
}
