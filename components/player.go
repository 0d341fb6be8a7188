package components

import (
	"math"

	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Never is the timestamp of an event that has not happened. Elapsed time since
// Never is +Inf, so no timing window is open for it.
var Never = math.Inf(-1)

type PlayerData struct {
	IsJumping bool // Latched while the jump button is held; never cleared

	JumpBufferTS    float64 // Last jump press made in the air outside coyote time
	LastGroundTS    float64 // Last tick the player was grounded
	RealJumpStartTS float64 // Tick the current jump impulse actually began

	Alive       bool
	BoundingBox gamemath.Aabb // Center is the player position
}

var Player = donburi.NewComponentType[PlayerData]()
