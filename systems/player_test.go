package systems

import (
	"testing"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdatePlayerPanicsWithoutSingletons(t *testing.T) {
	tests := []struct {
		name  string
		build func(w donburi.World)
	}{
		{name: "no_player", build: func(w donburi.World) {
			factory.CreateGameRect(w, math.Vec2{}, math.Vec2{X: 240, Y: 240})
		}},
		{name: "no_game_rect", build: func(w donburi.World) {
			factory.CreatePlayer(w, 0, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Reset()
			w := donburi.NewWorld()
			tt.build(w)

			defer func() {
				if recover() == nil {
					t.Fatalf("UpdatePlayer did not panic")
				}
			}()
			UpdatePlayer(w, dt, dt)
		})
	}
}

func TestCeilingClampKeepsVelocity(t *testing.T) {
	w, e := newWorld(t, 0, 223)
	components.Physics.Get(e).Velocity.Y = cfg.Player.JumpForce

	hold(e)
	UpdatePlayer(w, dt, dt)

	player, physics := components.Player.Get(e), components.Physics.Get(e)
	if top := player.BoundingBox.Max().Y; top != 240 {
		t.Fatalf("top = %v, want 240", top)
	}
	if want := cfg.Player.JumpForce + cfg.Physics.Gravity*dt; physics.Velocity.Y != want {
		t.Fatalf("vy = %v, want untouched %v", physics.Velocity.Y, want)
	}
	if physics.OnGround {
		t.Fatalf("ceiling contact grounded the player")
	}
}

func TestJumpFromBlock(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	// The block's top edge touches the player's feet
	factory.CreateBlock(w, components.BlockMetal, 0, -24, 0)

	hold(e)
	UpdatePlayer(w, dt, dt)

	physics := components.Physics.Get(e)
	if !physics.OnGround || physics.Velocity.Y != 0 {
		t.Fatalf("ground=%v vy=%v, want standing on the block", physics.OnGround, physics.Velocity.Y)
	}
	if y := components.Player.Get(e).BoundingBox.Center.Y; y != 0 {
		t.Fatalf("player sank into the block: y = %v", y)
	}

	hold(e, cfg.ActionJump)
	res := UpdatePlayer(w, dt, 2*dt)
	if !res.JumpStarted || !res.JumpApplied {
		t.Fatalf("jump from block = %+v", res)
	}
	if components.Player.Get(e).BoundingBox.Center.Y <= 0 {
		t.Fatalf("player did not rise")
	}
}

func TestJumpLatchIsNeverCleared(t *testing.T) {
	w, e := newWorld(t, 0, 0)

	hold(e, cfg.ActionJump)
	UpdatePlayer(w, dt, dt)
	hold(e)
	UpdatePlayer(w, dt, 2*dt)

	if !components.Player.Get(e).IsJumping {
		t.Fatalf("IsJumping cleared after release")
	}
}

func TestDeadPlayerIsFrozen(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	KillPlayer(w)

	before := components.Player.Get(e).BoundingBox
	hold(e, cfg.ActionRight, cfg.ActionJump)
	res := UpdatePlayer(w, dt, dt)

	if res != (MoveResult{}) {
		t.Fatalf("dead player moved: %+v", res)
	}
	if got := components.Player.Get(e).BoundingBox; got != before {
		t.Fatalf("box changed from %+v to %+v", before, got)
	}
}

func TestUpdatePlayerSkipsDegenerateStep(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	before := *components.Player.Get(e)

	hold(e, cfg.ActionLeft)
	if res := UpdatePlayer(w, 0, 0); res != (MoveResult{}) {
		t.Fatalf("zero dt produced %+v", res)
	}
	if got := *components.Player.Get(e); got != before {
		t.Fatalf("player changed on zero dt")
	}
	if v := components.Physics.Get(e).Velocity; v != (math.Vec2{}) {
		t.Fatalf("velocity changed on zero dt: %+v", v)
	}
}

func TestBlockOverheadDoesNotGround(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	// The block overlaps the top of the player, as when one falls through it
	factory.CreateBlock(w, components.BlockMetal, 0, 20, 0)

	hold(e)
	UpdatePlayer(w, dt, dt)

	physics := components.Physics.Get(e)
	if physics.OnGround {
		t.Fatalf("block overhead grounded the player")
	}
	if physics.Velocity.Y >= 0 {
		t.Fatalf("vy = %v, want the fall to keep accelerating", physics.Velocity.Y)
	}

	hold(e, cfg.ActionJump)
	if res := UpdatePlayer(w, dt, 2*dt); res.JumpStarted {
		t.Fatalf("jumped in mid-air under a block: %+v", res)
	}
}

func TestLandingOnBlockGrounds(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	// One tick of fall from rest brings the feet onto the block's top
	factory.CreateBlock(w, components.BlockMetal, 0, -24.1, 0)

	hold(e)
	UpdatePlayer(w, dt, dt)

	physics := components.Physics.Get(e)
	if !physics.OnGround || physics.Velocity.Y != 0 {
		t.Fatalf("ground=%v vy=%v, want landed on the block", physics.OnGround, physics.Velocity.Y)
	}
	if got := components.Player.Get(e).LastGroundTS; got != dt {
		t.Fatalf("LastGroundTS = %v, want %v", got, dt)
	}
}

func TestHalfSizeIsFixedAtSpawn(t *testing.T) {
	w, e := newWorld(t, 0, 0)
	want := components.Player.Get(e).BoundingBox.HalfExtent

	// A live tuning reload after spawn
	cfg.Player.HalfSize = math.Vec2{X: 4, Y: 4}

	for i := 1; i <= 5; i++ {
		hold(e, cfg.ActionRight)
		UpdatePlayer(w, dt, float64(i)*dt)
		if got := components.Player.Get(e).BoundingBox.HalfExtent; got != want {
			t.Fatalf("tick %d: half extent = %+v, want %+v", i, got, want)
		}
	}
}
