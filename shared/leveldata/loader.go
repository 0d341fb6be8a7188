package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and property names read from TMX files
const (
	BlocksGroup      = "Blocks"
	PlayerSpawnGroup = "PlayerSpawn"
	CollidersGroup   = "Colliders"
	HitsProperty     = "hits"
	TriggerProperty  = "trigger"
)

// LoadArena parses a TMX file into an Arena. Without a PlayerSpawn object the
// player spawns at the center of the map. It takes an fs.FS so callers can
// pass the embedded levels or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: map has no size", tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case BlocksGroup:
			for _, o := range og.Objects {
				block, err := parseBlock(arena, o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				arena.Blocks = append(arena.Blocks, block)
			}
		case CollidersGroup:
			for _, o := range og.Objects {
				collider, err := parseCollider(arena, o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				arena.Colliders = append(arena.Colliders, collider)
			}
		case PlayerSpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			// The first spawn wins; the game has a single player
			o := og.Objects[0]
			x, y := arena.toWorld(o.X+o.Width/2, o.Y+o.Height/2)
			arena.PlayerSpawn = Point{X: x, Y: y}
		}
	}

	// Sort blocks bottom-up, then left-to-right, for a stable spawn order
	sort.SliceStable(arena.Blocks, func(i, j int) bool {
		if arena.Blocks[i].Y != arena.Blocks[j].Y {
			return arena.Blocks[i].Y < arena.Blocks[j].Y
		}
		return arena.Blocks[i].X < arena.Blocks[j].X
	})

	return arena, nil
}

func parseBlock(arena *Arena, o *tiled.Object) (BlockSpawn, error) {
	kind := strings.ToLower(strings.TrimSpace(o.Name))
	if kind != "metal" && kind != "crate" {
		return BlockSpawn{}, fmt.Errorf("object %d: unknown block kind %q", o.ID, o.Name)
	}

	hits := o.Properties.GetInt(HitsProperty)
	if hits < 0 || hits > math.MaxUint8 {
		return BlockSpawn{}, fmt.Errorf("object %d: hits %d out of range", o.ID, hits)
	}
	if kind == "metal" {
		hits = 0
	}

	x, y := arena.toWorld(o.X+o.Width/2, o.Y+o.Height/2)
	return BlockSpawn{X: x, Y: y, Kind: kind, Hits: hits}, nil
}

func parseCollider(arena *Arena, o *tiled.Object) (ColliderSpawn, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return ColliderSpawn{}, fmt.Errorf("object %d: collider has no size", o.ID)
	}

	trigger := strings.ToLower(strings.TrimSpace(o.Properties.GetString(TriggerProperty)))
	switch trigger {
	case "":
		trigger = "none"
	case "none", "kill", "block":
	default:
		return ColliderSpawn{}, fmt.Errorf("object %d: unknown trigger %q", o.ID, trigger)
	}

	x, y := arena.toWorld(o.X+o.Width/2, o.Y+o.Height/2)
	return ColliderSpawn{X: x, Y: y, Width: o.Width, Height: o.Height, Trigger: trigger}, nil
}

// toWorld converts TMX pixel coordinates (y-down, origin top-left) to world
// coordinates.
func (a *Arena) toWorld(x, y float64) (float64, float64) {
	return x - a.Width/2, a.Height/2 - y
}

// LoadAllArenas discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, levelsDir string) (map[string]*Arena, []string, error) {
	pattern := levelsDir + "/*.tmx"
	if levelsDir == "" || levelsDir == "." {
		pattern = "*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
