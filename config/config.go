package config

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// PhysicsConfig contains world-wide integration settings
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // units/s², y-up so negative pulls down
	MinStep  float64 `yaml:"min_step"`  // ticks shorter than this are skipped
	TickRate int     `yaml:"tick_rate"` // fixed simulation ticks per second
}

// PlayerConfig contains all player movement and jump tuning
type PlayerConfig struct {
	MovementSpeed float64 `yaml:"movement_speed"`

	// Jump
	JumpForce      float64 `yaml:"jump_force"`       // vertical speed held while the jump is sustained
	JumpTimer      float64 `yaml:"jump_timer"`       // sustain window in seconds
	CoyoteTime     float64 `yaml:"coyote_time"`      // grace after leaving the ground
	JumpBufferTime float64 `yaml:"jump_buffer_time"` // grace for presses made before landing

	// Dimensions
	HalfSize math.Vec2 `yaml:"half_size"`
}

// BlockConfig contains block fall and crate hit tuning
type BlockConfig struct {
	HalfSize            math.Vec2 `yaml:"half_size"`
	MetalFallMultiplier float64   `yaml:"metal_fall_multiplier"`
	CrateFallMultiplier float64   `yaml:"crate_fall_multiplier"`
	CrateProbeHalfSize  math.Vec2 `yaml:"crate_probe_half_size"`
	DefaultCrateHits    uint8     `yaml:"default_crate_hits"`
	MetalSpawn          math.Vec2 `yaml:"metal_spawn"` // spawned once on the first tick
}

// ArenaConfig describes the default play area when no level file provides one
type ArenaConfig struct {
	Center           math.Vec2 `yaml:"center"`
	HalfSize         math.Vec2 `yaml:"half_size"`
	BroadPhaseMargin float64   `yaml:"broad_phase_margin"` // extra space around the arena tracked by the broad phase
	CellSize         int       `yaml:"cell_size"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogPlayer bool // Log player state every tick
	DrawBoxes bool // Draw swept boxes and crate probes
	SkipHub   bool // Skip the hub screen and go directly to the game
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Block BlockConfig
var Arena ArenaConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 560,
	}
	Reset()
}

// Reset restores every tuning section to its default values.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:  -1000.0,
		MinStep:  1e-6,
		TickRate: 60,
	}

	Player = PlayerConfig{
		MovementSpeed: 150.0,

		JumpForce:      200.0,
		JumpTimer:      0.2,
		CoyoteTime:     0.05,
		JumpBufferTime: 0.05,

		HalfSize: math.Vec2{X: 16, Y: 16},
	}

	Block = BlockConfig{
		HalfSize:            math.Vec2{X: 8, Y: 8},
		MetalFallMultiplier: 1.5,
		CrateFallMultiplier: 1.0,
		CrateProbeHalfSize:  math.Vec2{X: 12, Y: 4},
		DefaultCrateHits:    3,
		MetalSpawn:          math.Vec2{X: 0, Y: 200},
	}

	Arena = ArenaConfig{
		Center:           math.Vec2{X: 0, Y: 0},
		HalfSize:         math.Vec2{X: 240, Y: 240},
		BroadPhaseMargin: 64,
		CellSize:         32,
	}
}

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate checks that the current tuning can drive the simulation.
func Validate() error {
	return validate(Physics, Player, Block, Arena)
}

func validate(ph PhysicsConfig, pl PlayerConfig, bl BlockConfig, ar ArenaConfig) error {
	switch {
	case ph.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidTuning, ph.Gravity)
	case ph.MinStep <= 0:
		return fmt.Errorf("%w: min_step must be positive", ErrInvalidTuning)
	case ph.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidTuning)
	case pl.MovementSpeed < 0:
		return fmt.Errorf("%w: movement_speed must not be negative", ErrInvalidTuning)
	case pl.JumpTimer <= 0 || pl.CoyoteTime < 0 || pl.JumpBufferTime < 0:
		return fmt.Errorf("%w: jump timers must be positive", ErrInvalidTuning)
	case pl.HalfSize.X <= 0 || pl.HalfSize.Y <= 0:
		return fmt.Errorf("%w: player half_size must be positive", ErrInvalidTuning)
	case bl.HalfSize.X <= 0 || bl.HalfSize.Y <= 0:
		return fmt.Errorf("%w: block half_size must be positive", ErrInvalidTuning)
	case bl.CrateProbeHalfSize.X <= 0 || bl.CrateProbeHalfSize.Y <= 0:
		return fmt.Errorf("%w: crate_probe_half_size must be positive", ErrInvalidTuning)
	case ar.HalfSize.X < pl.HalfSize.X || ar.HalfSize.Y < pl.HalfSize.Y:
		return fmt.Errorf("%w: arena is smaller than the player", ErrInvalidTuning)
	case ar.CellSize <= 0 || ar.BroadPhaseMargin < 0:
		return fmt.Errorf("%w: broad phase cell_size and margin must be positive", ErrInvalidTuning)
	}
	return nil
}
