package components

import (
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GameRectData is the play area the player cannot leave. It is created once at
// level setup and never modified.
type GameRectData struct {
	Bounds gamemath.Aabb
}

var GameRect = donburi.NewComponentType[GameRectData]()
