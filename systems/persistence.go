package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/cratefall/config"
	"github.com/quasilyte/gdata"
)

const bindingsKey = "bindings"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store used for key bindings.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadBindings returns the saved action map, or the defaults when persistence
// is unavailable or nothing was saved yet.
func LoadBindings() (cfg.ActionMap, error) {
	if gdataManager == nil {
		return cfg.DefaultActionMap(), nil
	}

	data, err := gdataManager.LoadItem(bindingsKey)
	if err != nil {
		log.Printf("Warning: Could not load bindings: %v", err)
		return cfg.DefaultActionMap(), nil
	}
	if data == nil {
		return cfg.DefaultActionMap(), nil
	}
	return DecodeBindings(data)
}

// SaveBindings stores m for the next run.
func SaveBindings(m cfg.ActionMap) error {
	if gdataManager == nil {
		return nil
	}

	data, err := EncodeBindings(m)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(bindingsKey, data); err != nil {
		log.Printf("Warning: Could not save bindings: %v", err)
		return err
	}
	return nil
}

// EncodeBindings serializes an action map keyed by action name.
func EncodeBindings(m cfg.ActionMap) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode bindings: %w", err)
	}
	return data, nil
}

// DecodeBindings parses a saved action map. Actions missing from the saved
// data keep their default keys.
func DecodeBindings(data []byte) (cfg.ActionMap, error) {
	m := cfg.DefaultActionMap()
	var saved cfg.ActionMap
	if err := json.Unmarshal(data, &saved); err != nil {
		return m, fmt.Errorf("decode bindings: %w", err)
	}
	for id, keys := range saved.Bindings {
		if err := m.Rebind(id, keys...); err != nil {
			return cfg.DefaultActionMap(), fmt.Errorf("decode bindings: %w", err)
		}
	}
	return m, nil
}
