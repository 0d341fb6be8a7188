// Package keyboard resolves actions from the ebiten keyboard.
package keyboard

import (
	"fmt"
	"strings"
	"sync"

	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	keyNamesOnce sync.Once
	keyNames     map[string]ebiten.Key
)

// normalizeKeyName folds case and drops an optional "Key" prefix, so "KeyZ",
// "z" and "Z" all name the same key.
func normalizeKeyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) > len("key") {
		name = strings.TrimPrefix(name, "key")
	}
	return name
}

// ParseKey resolves a key name as printed by ebiten.Key.String.
func ParseKey(name string) (ebiten.Key, error) {
	keyNamesOnce.Do(func() {
		keyNames = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			keyNames[normalizeKeyName(k.String())] = k
		}
	})

	k, ok := keyNames[normalizeKeyName(name)]
	if !ok {
		return 0, fmt.Errorf("keyboard: unknown key %q", name)
	}
	return k, nil
}

// Keyboard polls the keys of an action map. Each key is tracked on its own,
// so a second key of a held action still fires a new press.
type Keyboard struct {
	keys    [cfg.ActionCount][]ebiten.Key
	tracker *input.KeyTracker
}

// New resolves every key name in m up front.
func New(m cfg.ActionMap) (*Keyboard, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	kb := &Keyboard{}
	var codes [cfg.ActionCount][]int
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		for _, name := range m.Keys(id) {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("keyboard: action %v: %w", id, err)
			}
			kb.keys[id] = append(kb.keys[id], k)
			codes[id] = append(codes[id], int(k))
		}
	}
	kb.tracker = input.NewKeyTracker(codes)
	return kb, nil
}

// Poll samples the keyboard once and returns the actions whose keys are held.
func (kb *Keyboard) Poll() [cfg.ActionCount]bool {
	kb.tracker.Update(func(key int) bool {
		return ebiten.IsKeyPressed(ebiten.Key(key))
	})
	return kb.tracker.Held()
}

// Retriggered returns the held actions that got another key pressed at the
// last Poll.
func (kb *Keyboard) Retriggered() [cfg.ActionCount]bool {
	return kb.tracker.Retriggered()
}

// Keys returns the resolved keys for an action.
func (kb *Keyboard) Keys(id cfg.ActionID) []ebiten.Key {
	return kb.keys[id]
}
