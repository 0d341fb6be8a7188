package components

import (
	"fmt"

	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ColliderTrigger tags what touching a collider should do.
type ColliderTrigger int

const (
	TriggerNone ColliderTrigger = iota
	TriggerKill
	TriggerBlock
)

func (t ColliderTrigger) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerKill:
		return "kill"
	case TriggerBlock:
		return "block"
	default:
		return fmt.Sprintf("ColliderTrigger(%d)", int(t))
	}
}

// ParseColliderTrigger resolves "none", "kill" or "block".
func ParseColliderTrigger(s string) (ColliderTrigger, error) {
	switch s {
	case "none":
		return TriggerNone, nil
	case "kill":
		return TriggerKill, nil
	case "block":
		return TriggerBlock, nil
	default:
		return 0, fmt.Errorf("components: unknown collider trigger %q", s)
	}
}

// ColliderData is general-purpose trigger geometry. Movement resolution does
// not read it yet.
type ColliderData struct {
	Trigger ColliderTrigger
	Bounds  gamemath.Aabb
}

var Collider = donburi.NewComponentType[ColliderData]()
