package factory

import (
	"github.com/automoto/cratefall/archetypes"
	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCollider places trigger geometry. It has no broad-phase proxy since
// nothing queries it during a tick.
func CreateCollider(w donburi.World, trigger components.ColliderTrigger, center, half math.Vec2) *donburi.Entry {
	collider := archetypes.Collider.Spawn(w)
	components.Collider.SetValue(collider, components.ColliderData{
		Trigger: trigger,
		Bounds:  gamemath.NewAabb(center, half),
	})
	return collider
}
