package factory

import (
	"github.com/automoto/cratefall/archetypes"
	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/automoto/cratefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centered at (x, y). All jump timers start
// closed.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	box := gamemath.NewAabb(math.Vec2{X: x, Y: y}, cfg.Player.HalfSize)
	components.Player.SetValue(player, components.PlayerData{
		JumpBufferTS:    components.Never,
		LastGroundTS:    components.Never,
		RealJumpStartTS: components.Never,
		Alive:           true,
		BoundingBox:     box,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	lo, size := box.Min(), box.Size()
	origin := spaceOrigin(w)
	obj := resolv.NewObject(lo.X-origin.X, lo.Y-origin.Y, size.X, size.Y, tags.ResolvPlayer)
	obj.Data = player // Link for O(1) lookup
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	addToSpace(w, obj)

	return player
}
