// Package leveldata provides TMX arena parsing.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Arena holds everything the simulation needs from a level file. Coordinates
// are world space and y-up. Arenas loaded from TMX are centered on the origin.
type Arena struct {
	Name        string
	Center      Point
	Width       float64
	Height      float64
	Blocks      []BlockSpawn
	Colliders   []ColliderSpawn
	PlayerSpawn Point
}

// BlockSpawn is an initial block. Hits is 0 when the level leaves the crate
// hit count to the session default.
type BlockSpawn struct {
	X, Y float64
	Kind string // "metal" or "crate"
	Hits int
}

// ColliderSpawn is trigger geometry. Trigger is "none", "kill" or "block".
type ColliderSpawn struct {
	X, Y          float64 // center
	Width, Height float64
	Trigger       string
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// HalfSize returns half the arena extent on each axis.
func (a *Arena) HalfSize() (float64, float64) {
	return a.Width / 2, a.Height / 2
}
