package systems

import (
	"testing"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 64

// newWorld builds the default play area with a broad phase and a player at
// (x, y).
func newWorld(t *testing.T, x, y float64) (donburi.World, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	w := donburi.NewWorld()
	rect := factory.CreateGameRect(w, math.Vec2{}, math.Vec2{X: 240, Y: 240})
	factory.CreateSpace(w, components.GameRect.Get(rect).Bounds)
	return w, factory.CreatePlayer(w, x, y)
}

func hold(e *donburi.Entry, actions ...cfg.ActionID) {
	var p [cfg.ActionCount]bool
	for _, a := range actions {
		p[a] = true
	}
	AdvanceInput(components.Input.Get(e), p)
}
