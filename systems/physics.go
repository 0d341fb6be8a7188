package systems

import (
	"fmt"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateBlocks moves every block down at its kind's fall rate. Blocks are not
// clamped by the play area and fall indefinitely.
func UpdateBlocks(w donburi.World, dt float64) {
	components.Block.Each(w, func(e *donburi.Entry) {
		block := components.Block.Get(e)
		pos := components.Position.Get(e)
		pos.Y += gamemath.FallDelta(cfg.Physics.Gravity, dt, FallMultiplier(block.Kind))
	})
}

// FallMultiplier scales gravity per block kind.
func FallMultiplier(kind components.BlockKind) float64 {
	switch kind {
	case components.BlockMetal:
		return cfg.Block.MetalFallMultiplier
	case components.BlockCrate:
		return cfg.Block.CrateFallMultiplier
	default:
		panic(fmt.Sprintf("systems: unhandled block kind %v", kind))
	}
}
