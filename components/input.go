package components

import (
	cfg "github.com/automoto/cratefall/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Held through both ticks, but another bound key went down this tick
	Retriggered [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
