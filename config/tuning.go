package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML layout of a tuning override file. Sections and fields
// missing from the file keep their current values.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Block   BlockConfig   `yaml:"block"`
	Arena   ArenaConfig   `yaml:"arena"`
}

// CurrentTuning snapshots the live tuning sections.
func CurrentTuning() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Block:   Block,
		Arena:   Arena,
	}
}

// ApplyTuning decodes YAML overrides on top of the current values, validates
// the result and only then installs it.
func ApplyTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := validate(t.Physics, t.Player, t.Block, t.Arena); err != nil {
		return err
	}
	Physics = t.Physics
	Player = t.Player
	Block = t.Block
	Arena = t.Arena
	return nil
}

// LoadTuning reads and applies a tuning file.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	return nil
}

// MarshalTuning renders the current tuning as YAML, e.g. to seed a file.
func MarshalTuning() ([]byte, error) {
	data, err := yaml.Marshal(CurrentTuning())
	if err != nil {
		return nil, fmt.Errorf("config: marshal tuning: %w", err)
	}
	return data, nil
}
