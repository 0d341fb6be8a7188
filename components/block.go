package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// BlockKind selects per-kind block behavior.
type BlockKind int

const (
	BlockMetal BlockKind = iota // Indestructible, falls faster
	BlockCrate                  // Destroyed once HitsLeft reaches zero
)

func (k BlockKind) String() string {
	switch k {
	case BlockMetal:
		return "metal"
	case BlockCrate:
		return "crate"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// ParseBlockKind resolves "metal" or "crate".
func ParseBlockKind(s string) (BlockKind, error) {
	switch s {
	case "metal":
		return BlockMetal, nil
	case "crate":
		return BlockCrate, nil
	default:
		return 0, fmt.Errorf("components: unknown block kind %q", s)
	}
}

type BlockData struct {
	Kind     BlockKind
	HitsLeft uint8 // Crate only; never increases
}

var Block = donburi.NewComponentType[BlockData]()

// Hit removes one hit from a crate, saturating at zero. It reports whether the
// crate is now depleted. Metal blocks ignore hits.
func (b *BlockData) Hit() bool {
	switch b.Kind {
	case BlockMetal:
		return false
	case BlockCrate:
		if b.HitsLeft > 0 {
			b.HitsLeft--
		}
		return b.HitsLeft == 0
	default:
		panic(fmt.Sprintf("components: unhandled block kind %v", b.Kind))
	}
}

// Depleted reports whether the block must be removed from the simulation.
func (b *BlockData) Depleted() bool {
	switch b.Kind {
	case BlockMetal:
		return false
	case BlockCrate:
		return b.HitsLeft == 0
	default:
		panic(fmt.Sprintf("components: unhandled block kind %v", b.Kind))
	}
}
