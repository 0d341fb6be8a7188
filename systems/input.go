package systems

import (
	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
)

// ActionResolver reports which actions are held this tick. How raw keys map to
// actions is up to the implementation.
type ActionResolver interface {
	Poll() [cfg.ActionCount]bool
}

// Retriggerer is implemented by resolvers that can tell when an already held
// action gets a fresh press on another of its keys. Read it after Poll.
type Retriggerer interface {
	Retriggered() [cfg.ActionCount]bool
}

// AdvanceInput swaps the input buffers: current becomes previous and pressed
// becomes current. Must run BEFORE UpdatePlayer in the tick order.
func AdvanceInput(input *components.InputData, pressed [cfg.ActionCount]bool) {
	AdvanceInputRetriggered(input, pressed, [cfg.ActionCount]bool{})
}

// AdvanceInputRetriggered is AdvanceInput for resolvers that also report
// fresh presses of held actions. Retriggers of actions not held are dropped.
func AdvanceInputRetriggered(input *components.InputData, pressed, retriggered [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = pressed
	for id := range retriggered {
		input.Retriggered[id] = retriggered[id] && pressed[id]
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick, and a
// retriggered action counts as just pressed.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && (!prev || input.Retriggered[id]),
		JustReleased: !curr && prev,
	}
}
