package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/automoto/cratefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// broadPhasePad widens broad-phase queries so boxes that only touch along a
// cell edge are still reported.
const broadPhasePad = 1.0

// UpdateObjects moves every broad-phase proxy to its entity's current box.
func UpdateObjects(w donburi.World) {
	origin := spaceOrigin(w)

	components.Block.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		placeObject(obj.Object, BlockFootprint(components.Position.Get(e).Vec2), origin)
	})

	if e, ok := components.Player.First(w); ok {
		if obj := components.Object.Get(e); obj.Object != nil {
			placeObject(obj.Object, components.Player.Get(e).BoundingBox, origin)
		}
	}
}

// blockCandidates returns the blocks that may touch box in entity order, using
// the player's proxy as the query object. Without a broad phase every block is
// returned.
func blockCandidates(w donburi.World, player *donburi.Entry, box gamemath.Aabb) []*donburi.Entry {
	obj := components.Object.Get(player)
	if obj.Object == nil || obj.Space == nil {
		return allBlocks(w)
	}

	query := box
	query.HalfExtent.X += broadPhasePad
	query.HalfExtent.Y += broadPhasePad
	placeObject(obj.Object, query, spaceOrigin(w))

	collision := obj.Check(0, 0, tags.ResolvBlock)
	if collision == nil {
		return nil
	}

	candidates := make([]*donburi.Entry, 0, len(collision.Objects))
	for _, o := range collision.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		candidates = append(candidates, e)
	}
	sortEntries(candidates)
	return candidates
}

func allBlocks(w donburi.World) []*donburi.Entry {
	var blocks []*donburi.Entry
	components.Block.Each(w, func(e *donburi.Entry) {
		blocks = append(blocks, e)
	})
	sortEntries(blocks)
	return blocks
}

func sortEntries(entries []*donburi.Entry) {
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return cmp.Compare(a.Entity(), b.Entity())
	})
}

func placeObject(obj *resolv.Object, box gamemath.Aabb, origin math.Vec2) {
	lo, size := box.Min(), box.Size()
	obj.X = lo.X - origin.X
	obj.Y = lo.Y - origin.Y
	obj.W = size.X
	obj.H = size.Y
	obj.Update()
}

func spaceOrigin(w donburi.World) math.Vec2 {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e).Origin
	}
	return math.Vec2{}
}
