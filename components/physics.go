package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2 // units/second, y-up
	OnGround bool      // Landed on the play-area floor or a block this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
