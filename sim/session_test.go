package sim

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/automoto/cratefall/components"
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/levels"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

// dt is exact in binary floating point, so timing windows land on known ticks.
const dt = 1.0 / 64

func press(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var p [cfg.ActionCount]bool
	for _, a := range actions {
		p[a] = true
	}
	return p
}

var idle [cfg.ActionCount]bool

func newTestSession(t *testing.T, arena *leveldata.Arena, opts ...Option) *Session {
	t.Helper()
	cfg.Reset()
	s := NewSession(arena, opts...)
	t.Cleanup(s.Close)
	return s
}

func playerState(t *testing.T, s *Session) (*components.PlayerData, *components.PhysicsData) {
	t.Helper()
	e, ok := components.Player.First(s.World())
	if !ok {
		t.Fatalf("no player in world")
	}
	return components.Player.Get(e), components.Physics.Get(e)
}

// settle steps with no input until the player rests on the floor.
func settle(t *testing.T, s *Session, step float64) Frame {
	t.Helper()
	for i := 0; i < 200; i++ {
		f, _ := s.Step(idle, step)
		if f.Player.OnGround {
			return f
		}
	}
	t.Fatalf("player never landed")
	return Frame{}
}

// lift moves the player into the air without touching its timers.
func lift(t *testing.T, s *Session, y float64) {
	t.Helper()
	player, physics := playerState(t, s)
	player.BoundingBox = player.BoundingBox.WithCenterY(y)
	physics.Velocity = math.Vec2{}
	physics.OnGround = false
}

func TestSettlesOnFloor(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))

	var landedAt uint64
	for i := 0; i < 120; i++ {
		f, ok := s.Step(idle, 1.0/60)
		if !ok {
			t.Fatalf("tick %d was skipped", i)
		}
		if f.Player.OnGround && landedAt == 0 {
			landedAt = f.Tick
		}
		if landedAt != 0 {
			if got := f.Player.Box.Min().Y; got != -240 {
				t.Fatalf("tick %d: bottom = %v, want -240", f.Tick, got)
			}
			if !f.Player.OnGround || f.Player.Velocity.Y != 0 {
				t.Fatalf("tick %d: onGround=%v vy=%v after landing", f.Tick, f.Player.OnGround, f.Player.Velocity.Y)
			}
		}
	}
	if landedAt == 0 {
		t.Fatalf("player never landed")
	}
}

func TestGroundedIdleTickIsStable(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))
	before := settle(t, s, dt)

	for i := 0; i < 10; i++ {
		f, _ := s.Step(idle, dt)
		if f.Player.Box != before.Player.Box {
			t.Fatalf("box moved from %+v to %+v", before.Player.Box, f.Player.Box)
		}
		if !f.Player.OnGround {
			t.Fatalf("player left the ground while idle")
		}
	}
}

func TestPlayerStaysInPlayArea(t *testing.T) {
	arena, err := leveldata.LoadArena(levels.FS, levels.Default)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	s := newTestSession(t, arena)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 600; i++ {
		var p [cfg.ActionCount]bool
		for a := range p {
			p[a] = rng.Intn(3) == 0
		}
		f, _ := s.Step(p, 1.0/60)

		c, lo, hi := f.Player.Box.Center, f.Bounds.Min(), f.Bounds.Max()
		if c.X < lo.X || c.X > hi.X || c.Y < lo.Y || c.Y > hi.Y {
			t.Fatalf("tick %d: center %+v outside %+v..%+v", f.Tick, c, lo, hi)
		}
	}
}

func TestCoyoteTime(t *testing.T) {
	tests := []struct {
		name      string
		airTicks  int // ticks spent falling before the press tick
		wantStart bool
	}{
		{name: "within_window", airTicks: 2, wantStart: true},  // pressed 3/64s after
		{name: "after_window", airTicks: 3, wantStart: false}, // pressed 4/64s after
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, WithMetalSpawn(nil))
			settle(t, s, dt)
			lift(t, s, 0)

			for i := 0; i < tt.airTicks; i++ {
				if f, _ := s.Step(idle, dt); f.Player.OnGround {
					t.Fatalf("player grounded while lifted")
				}
			}

			f, _ := s.Step(press(cfg.ActionJump), dt)
			if f.Move.JumpStarted != tt.wantStart {
				t.Fatalf("JumpStarted = %v, want %v", f.Move.JumpStarted, tt.wantStart)
			}
			if tt.wantStart {
				if want := cfg.Player.JumpForce + cfg.Physics.Gravity*dt; f.Player.Velocity.Y != want {
					t.Fatalf("vy = %v, want %v", f.Player.Velocity.Y, want)
				}
			} else if f.Player.Velocity.Y >= 0 {
				t.Fatalf("player rose without a jump: vy = %v", f.Player.Velocity.Y)
			}
		})
	}
}

func TestJumpBuffer(t *testing.T) {
	tests := []struct {
		name      string
		height    float64 // distance above resting height at the press
		wantStart bool
	}{
		// Lands on the tick after the press; the next tick is 2/64s after it.
		{name: "lands_in_window", height: 0.5, wantStart: true},
		// Lands 5 ticks after the press, too late for the buffer.
		{name: "lands_too_late", height: 5, wantStart: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, WithMetalSpawn(nil))
			rest := settle(t, s, dt).Player.Box.Center.Y
			lift(t, s, rest+tt.height)
			player, _ := playerState(t, s)
			player.LastGroundTS = components.Never

			f, _ := s.Step(press(cfg.ActionJump), dt)
			if f.Move.JumpStarted {
				t.Fatalf("jump started in the air outside coyote time")
			}

			var started bool
			for i := 0; i < 10 && !started; i++ {
				f, _ = s.Step(press(cfg.ActionJump), dt)
				started = f.Move.JumpStarted
			}
			if started != tt.wantStart {
				t.Fatalf("buffered jump started = %v, want %v", started, tt.wantStart)
			}
		})
	}
}

func TestJumpSustain(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))
	settle(t, s, dt)

	var applied []uint64
	for i := 0; i < 40; i++ {
		f, _ := s.Step(press(cfg.ActionJump), dt)
		if f.Move.JumpApplied {
			applied = append(applied, f.Tick)
		}
	}

	// 0.2s at 1/64s per tick covers offsets 0 through 12
	if len(applied) != 13 {
		t.Fatalf("impulse applied on %d ticks, want 13", len(applied))
	}
	for i := 1; i < len(applied); i++ {
		if applied[i] != applied[i-1]+1 {
			t.Fatalf("impulse ticks not contiguous: %v", applied)
		}
	}
}

func TestJumpReleaseAndRepress(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))
	settle(t, s, dt)

	f, _ := s.Step(press(cfg.ActionJump), dt)
	if !f.Move.JumpStarted {
		t.Fatalf("grounded press did not start a jump")
	}
	// Holding does not start a second jump after landing
	for i := 0; i < 100; i++ {
		f, _ = s.Step(press(cfg.ActionJump), dt)
		if f.Move.JumpStarted {
			t.Fatalf("held jump restarted on tick %d", f.Tick)
		}
	}
	if !f.Player.OnGround {
		t.Fatalf("player did not land after the jump")
	}

	s.Step(idle, dt)
	if f, _ = s.Step(press(cfg.ActionJump), dt); !f.Move.JumpStarted {
		t.Fatalf("a fresh press on the ground did not jump")
	}
}

func TestCrateDepletion(t *testing.T) {
	arena := &leveldata.Arena{
		Width:       480,
		Height:      480,
		PlayerSpawn: leveldata.Point{X: 0, Y: -224},
		// Falls onto the player's head on the first tick
		Blocks: []leveldata.BlockSpawn{{X: 0, Y: -204.375, Kind: "crate", Hits: 2}},
	}
	s := newTestSession(t, arena, WithMetalSpawn(nil))

	start := s.Frame()
	if len(start.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(start.Blocks))
	}
	crate := start.Blocks[0].Entity

	// The probe only reaches the player after this tick's fall, so a hit
	// here means blocks moved before the player.
	f, _ := s.Step(idle, dt)
	b, ok := f.Block(crate)
	if !ok || b.HitsLeft != 1 || f.Move.CrateHits != 1 {
		t.Fatalf("after first hit: block=%+v present=%v hits=%d", b, ok, f.Move.CrateHits)
	}
	if len(f.Removed) != 0 {
		t.Fatalf("crate removed early: %v", f.Removed)
	}

	f, _ = s.Step(idle, dt)
	if _, ok := f.Block(crate); ok {
		t.Fatalf("depleted crate still present")
	}
	if len(f.Removed) != 1 || f.Removed[0] != crate {
		t.Fatalf("Removed = %v, want [%v]", f.Removed, crate)
	}

	f, _ = s.Step(idle, dt)
	if len(f.Blocks) != 0 {
		t.Fatalf("blocks after removal: %+v", f.Blocks)
	}
}

func TestMetalIsNeverRemoved(t *testing.T) {
	s := newTestSession(t, nil)

	f, _ := s.Step(idle, dt)
	if len(f.Blocks) != 1 || f.Blocks[0].Kind != components.BlockMetal {
		t.Fatalf("metal block not spawned on first tick: %+v", f.Blocks)
	}
	metal := f.Blocks[0]
	if want := cfg.Block.MetalSpawn.Y + cfg.Physics.Gravity*dt*cfg.Block.MetalFallMultiplier; metal.Position.Y != want {
		t.Fatalf("metal y = %v after one tick, want %v", metal.Position.Y, want)
	}

	// The metal block falls through the player and out of the arena
	for i := 0; i < 300; i++ {
		f, _ = s.Step(press(cfg.ActionLeft), dt)
		if _, ok := f.Block(metal.Entity); !ok {
			t.Fatalf("metal block removed on tick %d", f.Tick)
		}
	}
	if len(f.Blocks) != 1 {
		t.Fatalf("metal spawned more than once: %d blocks", len(f.Blocks))
	}
}

func TestDegenerateStepIsNoop(t *testing.T) {
	s := newTestSession(t, nil)
	s.Step(idle, dt)
	before := s.Frame()

	for _, bad := range []float64{0, -dt, 1e-9, gomath.NaN(), gomath.Inf(1), gomath.Inf(-1)} {
		f, ok := s.Step(press(cfg.ActionJump, cfg.ActionRight), bad)
		if ok {
			t.Fatalf("Step(%v) ran a tick", bad)
		}
		if f.Tick != before.Tick || f.Now != before.Now || f.Player != before.Player {
			t.Fatalf("Step(%v) changed state: %+v -> %+v", bad, before, f)
		}
		if len(f.Blocks) != 1 || f.Blocks[0].Position != before.Blocks[0].Position {
			t.Fatalf("Step(%v) moved blocks", bad)
		}
	}
}

func TestHorizontalMovementStopsAtWalls(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))
	settle(t, s, dt)

	var f Frame
	for i := 0; i < 200; i++ {
		f, _ = s.Step(press(cfg.ActionRight), dt)
		if f.Player.Velocity.X != cfg.Player.MovementSpeed {
			t.Fatalf("vx = %v while holding right", f.Player.Velocity.X)
		}
	}
	if right := f.Player.Box.Max().X; right > 240 || right < 240-cfg.Player.MovementSpeed*dt {
		t.Fatalf("right edge = %v, want just inside 240", right)
	}

	f, _ = s.Step(idle, dt)
	if f.Player.Velocity.X != 0 {
		t.Fatalf("vx = %v after release, want 0", f.Player.Velocity.X)
	}
}

func TestClosedSessionPanics(t *testing.T) {
	cfg.Reset()
	s := NewSession(nil)
	s.Close()
	s.Close()
	if !s.Closed() {
		t.Fatalf("Closed() = false after Close")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Step on closed session did not panic")
		}
	}()
	s.Step(idle, dt)
}

func TestCollidersDoNotAffectMovement(t *testing.T) {
	arena := DefaultArena()
	arena.Colliders = []leveldata.ColliderSpawn{
		{X: 0, Y: -200, Width: 480, Height: 80, Trigger: "kill"},
	}
	s := newTestSession(t, arena, WithMetalSpawn(nil))

	f := settle(t, s, dt)
	if len(f.Colliders) != 1 || f.Colliders[0].Trigger != components.TriggerKill {
		t.Fatalf("Colliders = %+v, want one kill collider", f.Colliders)
	}
	if got := f.Player.Box.Min().Y; got != -240 {
		t.Errorf("bottom = %v, want -240", got)
	}
	if !f.Player.Alive {
		t.Errorf("player died inside a kill collider")
	}
}

func TestMetalFallingThroughPlayerDoesNotGround(t *testing.T) {
	s := newTestSession(t, nil)

	// The metal block passes the player around tick 8; the floor is far below
	for i := 0; i < 20; i++ {
		f, _ := s.Step(idle, 1.0/60)
		if f.Player.OnGround {
			t.Fatalf("tick %d: grounded with bottom = %v", f.Tick, f.Player.Box.Min().Y)
		}
		if f.Player.Velocity.Y >= 0 {
			t.Fatalf("tick %d: vy = %v, want falling", f.Tick, f.Player.Velocity.Y)
		}
	}
}

func TestTunedMinStepIsTheOnlyThreshold(t *testing.T) {
	s := newTestSession(t, nil)

	cfg.Physics.MinStep = 1e-9
	if _, ok := s.Step(idle, 1e-8); !ok {
		t.Fatalf("step above a lowered min step was skipped")
	}

	cfg.Physics.MinStep = 0.01
	before := s.Frame()
	if f, ok := s.Step(idle, 0.005); ok || f.Tick != before.Tick || f.Player != before.Player {
		t.Fatalf("step below a raised min step ran: ok=%v tick=%d", ok, f.Tick)
	}
	if _, ok := s.Step(idle, dt); !ok {
		t.Fatalf("step above a raised min step was skipped")
	}
}

func TestRetriggeredJumpStartsOnGround(t *testing.T) {
	s := newTestSession(t, nil, WithMetalSpawn(nil))

	// Jump is held from spawn, so the press is spent in the air
	var f Frame
	for i := 0; i < 200 && !f.Player.OnGround; i++ {
		f, _ = s.Step(press(cfg.ActionJump), dt)
	}
	if !f.Player.OnGround {
		t.Fatalf("player never landed")
	}

	f, _ = s.Step(press(cfg.ActionJump), dt)
	if f.Move.JumpStarted {
		t.Fatalf("holding the same key started a jump")
	}

	// Another jump key goes down while the first is still held
	f, _ = s.StepRetriggered(press(cfg.ActionJump), press(cfg.ActionJump), dt)
	if !f.Move.JumpStarted || f.Player.Velocity.Y <= 0 {
		t.Fatalf("second key did not start a jump: move=%+v vy=%v", f.Move, f.Player.Velocity.Y)
	}
}
