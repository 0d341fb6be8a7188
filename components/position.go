package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PositionData struct {
	math.Vec2
}

var Position = donburi.NewComponentType[PositionData]()
