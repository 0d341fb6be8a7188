package factory

import (
	"github.com/automoto/cratefall/archetypes"
	"github.com/automoto/cratefall/components"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateGameRect creates the play-area singleton.
func CreateGameRect(w donburi.World, center, half math.Vec2) *donburi.Entry {
	rect := archetypes.GameRect.Spawn(w)
	components.GameRect.SetValue(rect, components.GameRectData{
		Bounds: gamemath.NewAabb(center, half),
	})
	return rect
}

// CreateSession creates the session clock at time zero.
func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{})
	return session
}
