package config

import (
	"fmt"
	"slices"
	"strings"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionJump ActionID = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionObject
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionJump:   "jump",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionObject: "object",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("ActionID(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a case-insensitive action name.
func ParseAction(name string) (ActionID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), nil
		}
	}
	return 0, fmt.Errorf("config: unknown action %q", name)
}

func (a ActionID) MarshalText() ([]byte, error) {
	if a < 0 || a >= ActionCount {
		return nil, fmt.Errorf("config: unknown action %d", int(a))
	}
	return []byte(actionNames[a]), nil
}

func (a *ActionID) UnmarshalText(text []byte) error {
	id, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ActionMap binds each action to a set of raw key names. Key names are
// resolved by the input backend; the config layer only stores them.
type ActionMap struct {
	Bindings map[ActionID][]string `json:"bindings"`
}

// DefaultActionMap returns a fresh copy of the default bindings.
func DefaultActionMap() ActionMap {
	return ActionMap{
		Bindings: map[ActionID][]string{
			ActionUp:     {"ArrowUp", "Z"},
			ActionDown:   {"ArrowDown", "S"},
			ActionLeft:   {"ArrowLeft", "Q"},
			ActionRight:  {"ArrowRight", "D"},
			ActionJump:   {"Space"},
			ActionObject: {"E"},
		},
	}
}

// Keys returns the key names bound to action.
func (m ActionMap) Keys(action ActionID) []string {
	return m.Bindings[action]
}

// Rebind replaces the keys bound to action. Duplicate names are dropped.
func (m *ActionMap) Rebind(action ActionID, keys ...string) error {
	if action < 0 || action >= ActionCount {
		return fmt.Errorf("config: rebind %v: unknown action", action)
	}
	cleaned := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || slices.Contains(cleaned, k) {
			continue
		}
		cleaned = append(cleaned, k)
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("config: rebind %v: no keys given", action)
	}
	if m.Bindings == nil {
		m.Bindings = make(map[ActionID][]string, ActionCount)
	}
	m.Bindings[action] = cleaned
	return nil
}

// Validate requires every action to have at least one key.
func (m ActionMap) Validate() error {
	for id := ActionID(0); id < ActionCount; id++ {
		if len(m.Bindings[id]) == 0 {
			return fmt.Errorf("config: action %v has no key binding", id)
		}
	}
	return nil
}

// Clone returns a deep copy of the map.
func (m ActionMap) Clone() ActionMap {
	out := ActionMap{Bindings: make(map[ActionID][]string, len(m.Bindings))}
	for id, keys := range m.Bindings {
		out.Bindings[id] = slices.Clone(keys)
	}
	return out
}
