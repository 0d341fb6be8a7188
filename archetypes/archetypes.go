package archetypes

import (
	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Input,
		components.Object,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Position,
		components.Object,
	)
	GameRect = newArchetype(
		tags.GameRect,
		components.GameRect,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Collider = newArchetype(
		components.Collider,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
