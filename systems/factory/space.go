package factory

import (
	stdmath "math"

	"github.com/automoto/cratefall/archetypes"
	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the broad-phase grid covering bounds plus the configured
// margin. Create it before any entity that should be tracked.
func CreateSpace(w donburi.World, bounds gamemath.Aabb) *donburi.Entry {
	margin := cfg.Arena.BroadPhaseMargin
	cell := cfg.Arena.CellSize

	lo, size := bounds.Min(), bounds.Size()
	width := int(stdmath.Ceil(size.X + 2*margin))
	height := int(stdmath.Ceil(size.Y + 2*margin))

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(width, height, cell, cell),
		Origin: math.Vec2{X: lo.X - margin, Y: lo.Y - margin},
	})
	return space
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func spaceOrigin(w donburi.World) math.Vec2 {
	if spaceEntry, ok := components.Space.First(w); ok {
		return components.Space.Get(spaceEntry).Origin
	}
	return math.Vec2{}
}
