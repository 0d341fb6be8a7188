package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/fonts"
	"github.com/automoto/cratefall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	arenaColor  = color.RGBA{24, 24, 36, 255}
	playerColor = color.RGBA{60, 120, 255, 255}
	metalColor  = color.RGBA{140, 140, 150, 255}
	crateColor  = color.RGBA{150, 100, 50, 255}
	boxXColor   = color.RGBA{0, 255, 0, 255}
	boxYColor   = color.RGBA{255, 0, 255, 255}
	probeColor  = color.RGBA{255, 220, 0, 255}

	colliderColors = map[components.ColliderTrigger]color.RGBA{
		components.TriggerNone:  {120, 120, 120, 255},
		components.TriggerKill:  {255, 40, 40, 255},
		components.TriggerBlock: {40, 200, 255, 255},
	}
)

// view maps y-up world coordinates onto the screen, centering the arena.
type view struct {
	offX, offY float64
}

func newView(bounds gamemath.Aabb, screen *ebiten.Image) view {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	size := bounds.Size()
	return view{
		offX: (w-size.X)/2 - bounds.Min().X,
		offY: (h-size.Y)/2 + bounds.Max().Y,
	}
}

func (v view) rect(box gamemath.Aabb) (x, y, w, h float32) {
	lo, hi := box.Min(), box.Max()
	return float32(lo.X + v.offX), float32(v.offY - hi.Y), float32(hi.X - lo.X), float32(hi.Y - lo.Y)
}

func (v view) fill(screen *ebiten.Image, box gamemath.Aabb, c color.Color) {
	x, y, w, h := v.rect(box)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func (v view) outline(screen *ebiten.Image, box gamemath.Aabb, c color.Color) {
	x, y, w, h := v.rect(box)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func (ps *PlatformerScene) drawArena(_ *ecs.ECS, screen *ebiten.Image) {
	newView(ps.frame.Bounds, screen).fill(screen, ps.frame.Bounds, arenaColor)
}

func (ps *PlatformerScene) drawBlocks(_ *ecs.ECS, screen *ebiten.Image) {
	v := newView(ps.frame.Bounds, screen)
	for _, b := range ps.frame.Blocks {
		switch b.Kind {
		case components.BlockMetal:
			v.fill(screen, b.Footprint(), metalColor)
		case components.BlockCrate:
			v.fill(screen, b.Footprint(), lerpWhite(crateColor, ps.flashAlpha(b.Entity)))
		}
	}
}

func (ps *PlatformerScene) drawPlayer(_ *ecs.ECS, screen *ebiten.Image) {
	newView(ps.frame.Bounds, screen).fill(screen, ps.frame.Player.Box, playerColor)
}

func (ps *PlatformerScene) drawDebug(_ *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes || ps.frame.Tick == 0 {
		return
	}
	v := newView(ps.frame.Bounds, screen)
	v.outline(screen, ps.frame.Move.BoxX, boxXColor)
	v.outline(screen, ps.frame.Move.BoxY, boxYColor)
	for _, c := range ps.frame.Colliders {
		v.outline(screen, c.Bounds, colliderColors[c.Trigger])
	}
	for _, b := range ps.frame.Blocks {
		if probe, ok := b.Probe(); ok {
			v.outline(screen, probe, probeColor)
		}
	}
}

func (ps *PlatformerScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	p := ps.frame.Player
	status := fmt.Sprintf("tick %d  crates hit %d  blocks %d", ps.frame.Tick, ps.crateHits, len(ps.frame.Blocks))
	text.Draw(screen, status, fonts.Mono.Get(), 8, 16, color.White)
	if cfg.Debug.DrawBoxes {
		detail := fmt.Sprintf("pos (%.1f, %.1f)  vel (%.1f, %.1f)  ground %v",
			p.Box.Center.X, p.Box.Center.Y, p.Velocity.X, p.Velocity.Y, p.OnGround)
		text.Draw(screen, detail, fonts.MonoSmall.Get(), 8, 30, color.White)
	}
}

// lerpWhite blends c toward white by t in [0, 1].
func lerpWhite(c color.RGBA, t float32) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*t)
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}
