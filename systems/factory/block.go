package factory

import (
	"fmt"

	"github.com/automoto/cratefall/archetypes"
	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateBlock spawns a block centered at (x, y). hits is ignored for metal
// blocks.
func CreateBlock(w donburi.World, kind components.BlockKind, x, y float64, hits uint8) *donburi.Entry {
	var block *donburi.Entry
	switch kind {
	case components.BlockMetal:
		block = archetypes.Block.Spawn(w, tags.Metal)
		hits = 0
	case components.BlockCrate:
		block = archetypes.Block.Spawn(w, tags.Crate)
	default:
		panic(fmt.Sprintf("factory: unhandled block kind %v", kind))
	}

	components.Block.SetValue(block, components.BlockData{Kind: kind, HitsLeft: hits})
	components.Position.SetValue(block, components.PositionData{Vec2: math.Vec2{X: x, Y: y}})

	// Create collision object
	half := cfg.Block.HalfSize
	origin := spaceOrigin(w)
	obj := resolv.NewObject(x-half.X-origin.X, y-half.Y-origin.Y, half.X*2, half.Y*2, tags.ResolvBlock, kind.String())
	obj.Data = block // Link for O(1) lookup

	components.Object.SetValue(block, components.ObjectData{Object: obj})

	addToSpace(w, obj)

	return block
}
