package input

import (
	cfg "github.com/automoto/cratefall/config"
)

// KeyTracker follows every bound key separately, so pressing a second key of
// an action that is already held still reads as a new press. Keys are plain
// ints so any backend can feed it.
type KeyTracker struct {
	bindings [cfg.ActionCount][]int
	down     map[int]bool

	held        [cfg.ActionCount]bool
	retriggered [cfg.ActionCount]bool
}

func NewKeyTracker(bindings [cfg.ActionCount][]int) *KeyTracker {
	return &KeyTracker{
		bindings: bindings,
		down:     make(map[int]bool),
	}
}

// Update samples every bound key once through isDown.
func (t *KeyTracker) Update(isDown func(key int) bool) {
	prevHeld := t.held
	next := make(map[int]bool, len(t.down))

	for id, keys := range t.bindings {
		var held, fresh bool
		for _, k := range keys {
			d, seen := next[k]
			if !seen {
				d = isDown(k)
				next[k] = d
			}
			if !d {
				continue
			}
			held = true
			if !t.down[k] {
				fresh = true
			}
		}
		t.held[id] = held
		t.retriggered[id] = fresh && prevHeld[id]
	}

	t.down = next
}

// Held returns the actions with at least one key down at the last Update.
func (t *KeyTracker) Held() [cfg.ActionCount]bool {
	return t.held
}

// Retriggered returns the actions that were already held and got another key
// pressed at the last Update.
func (t *KeyTracker) Retriggered() [cfg.ActionCount]bool {
	return t.retriggered
}
