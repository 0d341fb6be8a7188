package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceData holds the broad-phase grid. Origin is the world position of the
// grid's (0, 0) corner; object coordinates are world coordinates minus Origin.
type SpaceData struct {
	*resolv.Space
	Origin math.Vec2
}

var Space = donburi.NewComponentType[SpaceData]()
