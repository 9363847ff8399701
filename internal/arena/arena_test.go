package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/core"
	"github.com/vovakirdan/haptic-arena/internal/haptic"
	"github.com/vovakirdan/haptic-arena/internal/haptic/sim"
)

// newTestArena builds an arena on a simulated controller.
func newTestArena(t *testing.T, cfg config.ArenaConfig, connected bool) (*Arena, *sim.Device) {
	t.Helper()

	dev := sim.New(connected)
	a, err := New(cfg, Options{
		Haptics: haptic.NewController(0, dev, nil),
		Backend: "sim",
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return a, dev
}

// cursorAt returns the default config with the cursor centre at (cx, cy).
func cursorAt(cx, cy float64) config.ArenaConfig {
	cfg := config.DefaultArenaConfig()
	cfg.Cursor.X = cx - cfg.Cursor.Radius
	cfg.Cursor.Y = cy - cfg.Cursor.Radius
	return cfg
}

func TestMoveUpUntilSolidWall(t *testing.T) {
	a, dev := newTestArena(t, config.DefaultArenaConfig(), true)
	up := core.NewInputFrame(core.ActionUp)

	firstHit := 0
	for frame := 1; frame <= 30; frame++ {
		res := a.Step(up)
		if res.Colliding && firstHit == 0 {
			firstHit = frame
		}
		if firstHit != 0 && !res.Colliding {
			t.Fatalf("frame %d: collision released while still pushing up", frame)
		}
	}

	// Centre starts at y=315 and moves 5 per frame; touching y=250 with a
	// radius of 15 happens when the centre reaches y=265, on frame 10.
	if firstHit != 10 {
		t.Errorf("first collision on frame %d, expected 10", firstHit)
	}

	actor := a.Actor()
	if actor.Pos != (core.Vec2{X: 400, Y: 255}) {
		t.Errorf("cursor frozen at %v, expected {400 255}", actor.Pos)
	}
	if c := actor.Center(); c.Y-actor.Radius != 255 {
		t.Errorf("circle top at %v, expected 255", c.Y-actor.Radius)
	}

	if a.Last().Hit != 0 {
		t.Errorf("Last().Hit = %d, expected 0 (solid)", a.Last().Hit)
	}

	cmds := dev.Commands()
	if len(cmds) != 30 {
		t.Fatalf("len(Commands()) = %d, expected one command per frame", len(cmds))
	}
	for i, cmd := range cmds[:9] {
		if cmd != (sim.Command{}) {
			t.Errorf("frame %d: expected stop, got %+v", i+1, cmd)
		}
	}
	want := haptic.Magnitude(0.7)
	for i, cmd := range cmds[9:] {
		if cmd.Strong != want || cmd.Weak != want {
			t.Errorf("frame %d: command %+v, expected %d on both motors", i+10, cmd, want)
		}
	}
}

func TestCollisionRevertsExactly(t *testing.T) {
	// Centre 20 units left of the dangerous block; one step right is tangent.
	a, _ := newTestArena(t, cursorAt(580, 130), true)
	before := a.Actor().Pos

	res := a.Step(core.NewInputFrame(core.ActionRight))

	if !res.Colliding {
		t.Fatal("moving into the block should collide")
	}
	if a.Actor().Pos != before {
		t.Errorf("position after collision = %v, expected %v", a.Actor().Pos, before)
	}
}

func TestDiagonalMovementNotNormalised(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected core.Vec2
	}{
		{"up right", []core.Action{core.ActionUp, core.ActionRight}, core.Vec2{X: 405, Y: 295}},
		{"down left", []core.Action{core.ActionDown, core.ActionLeft}, core.Vec2{X: 395, Y: 305}},
		{"opposite keys cancel", []core.Action{core.ActionLeft, core.ActionRight}, core.Vec2{X: 400, Y: 300}},
		{"single axis", []core.Action{core.ActionDown}, core.Vec2{X: 400, Y: 305}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestArena(t, config.DefaultArenaConfig(), true)
			a.Step(core.NewInputFrame(tc.actions...))
			if got := a.Actor().Pos; got != tc.expected {
				t.Errorf("Pos = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVibrationProportionalToIntensity(t *testing.T) {
	tests := []struct {
		name      string
		cx, cy    float64
		move      core.Action
		kind      string
		intensity float64
	}{
		{"dangerous", 580, 130, core.ActionRight, "dangerous", 0.9},
		{"weak", 260, 480, core.ActionDown, "weak", 0.3},
		{"bouncy", 540, 380, core.ActionDown, "bouncy", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, dev := newTestArena(t, cursorAt(tc.cx, tc.cy), true)

			res := a.Step(core.NewInputFrame(tc.move))
			if !res.Colliding {
				t.Fatal("expected a collision")
			}
			if kind := a.Obstacles()[res.Hit].Kind; kind != tc.kind {
				t.Errorf("hit %q, expected %q", kind, tc.kind)
			}
			if res.Rumble != tc.intensity {
				t.Errorf("Rumble = %v, expected %v", res.Rumble, tc.intensity)
			}

			last, ok := dev.Last()
			if !ok {
				t.Fatal("no vibration command issued")
			}
			expected := float64(haptic.MaxMagnitude) * tc.intensity
			for _, m := range []uint16{last.Strong, last.Weak} {
				if diff := float64(m) - expected; diff > 1 || diff < -1 {
					t.Errorf("magnitude %d, expected ≈%.1f", m, expected)
				}
			}
		})
	}
}

func TestFirstHitWins(t *testing.T) {
	overlapping := func(first, second float64) config.ArenaConfig {
		cfg := cursorAt(140, 125)
		cfg.Obstacles = []config.ObstacleConfig{
			{Kind: "a", X: 100, Y: 100, Width: 50, Height: 50, Color: "red", Intensity: first},
			{Kind: "b", X: 120, Y: 100, Width: 50, Height: 50, Color: "green", Intensity: second},
		}
		return cfg
	}

	tests := []struct {
		name          string
		first, second float64
		expected      float64
	}{
		{"weaker first", 0.2, 0.8, 0.2},
		{"stronger first", 0.8, 0.2, 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, dev := newTestArena(t, overlapping(tc.first, tc.second), true)

			res := a.Step(core.NewInputFrame())
			if res.Hit != 0 {
				t.Errorf("Hit = %d, expected the first obstacle", res.Hit)
			}

			cmds := dev.Commands()
			if len(cmds) != 1 {
				t.Fatalf("len(Commands()) = %d, expected exactly one command", len(cmds))
			}
			if cmds[0].Strong != haptic.Magnitude(tc.expected) {
				t.Errorf("Strong = %d, expected %d", cmds[0].Strong, haptic.Magnitude(tc.expected))
			}
		})
	}
}

func TestNoCollisionStopsVibration(t *testing.T) {
	a, dev := newTestArena(t, config.DefaultArenaConfig(), true)

	for i := 0; i < 3; i++ {
		res := a.Step(core.NewInputFrame(core.ActionLeft))
		if res.Colliding || res.Hit != -1 || res.Rumble != 0 {
			t.Errorf("frame %d: unexpected result %+v", i, res)
		}
	}

	cmds := dev.Commands()
	if len(cmds) != 3 {
		t.Fatalf("len(Commands()) = %d, expected a stop per frame", len(cmds))
	}
	for _, cmd := range cmds {
		if cmd != (sim.Command{}) {
			t.Errorf("expected stop, got %+v", cmd)
		}
	}
}

func TestDisconnectedControllerGetsNoCommands(t *testing.T) {
	a, dev := newTestArena(t, config.DefaultArenaConfig(), false)
	up := core.NewInputFrame(core.ActionUp)

	for i := 0; i < 20; i++ {
		a.Step(up)
	}

	if !a.Last().Colliding {
		t.Fatal("cursor should be pressed against the wall")
	}
	if a.Last().Rumble != 0 {
		t.Errorf("Rumble = %v, expected 0 without a controller", a.Last().Rumble)
	}
	if a.Actor().Pos.Y != 255 {
		t.Errorf("collision must still block movement, Pos.Y = %v", a.Actor().Pos.Y)
	}
	if n := len(dev.Commands()); n != 0 {
		t.Errorf("%d commands issued to a disconnected controller, expected 0", n)
	}
	if dev.Probes() != 20 {
		t.Errorf("Probes() = %d, expected one connectivity check per frame", dev.Probes())
	}
}

func TestReconnectMidRun(t *testing.T) {
	a, dev := newTestArena(t, config.DefaultArenaConfig(), false)

	a.Step(core.NewInputFrame())
	dev.SetConnected(true)
	a.Step(core.NewInputFrame())

	if n := len(dev.Commands()); n != 1 {
		t.Errorf("len(Commands()) = %d, expected a stop once connected", n)
	}
}

func TestCloseTransitions(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
	}{
		{"window closed", core.ActionClose},
		{"escape", core.ActionEscape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, dev := newTestArena(t, config.DefaultArenaConfig(), true)

			res := a.Step(core.NewInputFrame(tc.action, core.ActionUp))
			if res.State != StateClosed || a.State() != StateClosed {
				t.Fatalf("State = %v, expected closed", a.State())
			}
			if a.Actor().Pos != (core.Vec2{X: 400, Y: 300}) {
				t.Errorf("closing frame should not move the cursor, Pos = %v", a.Actor().Pos)
			}

			// Closed is terminal: further frames and closes do nothing.
			a.Step(core.NewInputFrame(core.ActionUp))
			a.Close()

			cmds := dev.Commands()
			if len(cmds) != 1 || cmds[0] != (sim.Command{}) {
				t.Errorf("Commands() = %+v, expected exactly one final stop", cmds)
			}
			if a.Frames() != 0 {
				t.Errorf("Frames() = %d, expected 0", a.Frames())
			}
		})
	}
}

func TestCloseStopsEvenWhenDisconnected(t *testing.T) {
	a, dev := newTestArena(t, config.DefaultArenaConfig(), false)

	a.Step(core.NewInputFrame(core.ActionUp))
	a.Close()

	cmds := dev.Commands()
	if len(cmds) != 1 || cmds[0] != (sim.Command{}) {
		t.Errorf("Commands() = %+v, expected the single unconditional final stop", cmds)
	}
}

func TestTeardownSendsOneFinalStop(t *testing.T) {
	dev := sim.New(true)
	ctrl := haptic.NewController(0, dev, nil)
	a, err := New(config.DefaultArenaConfig(), Options{Haptics: ctrl, Backend: "sim"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Same order as the command: the loop closes the arena, then the
	// deferred controller close releases the device.
	a.Step(core.NewInputFrame(core.ActionEscape))
	a.Close()
	if err := ctrl.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	cmds := dev.Commands()
	if len(cmds) != 1 || cmds[0] != (sim.Command{}) {
		t.Errorf("Commands() = %+v, expected exactly one final stop", cmds)
	}
	if !dev.Closed() {
		t.Error("controller close should release the device")
	}
}

func TestObstaclesAreCopies(t *testing.T) {
	a, _ := newTestArena(t, config.DefaultArenaConfig(), true)

	obs := a.Obstacles()
	obs[0].Intensity = 0

	if a.Obstacles()[0].Intensity != 0.7 {
		t.Error("mutating the returned slice must not change the arena")
	}
	if !a.Obstacles()[1].Bouncy || a.Obstacles()[1].Kind != "bouncy" {
		t.Error("bouncy flag and kind should be carried from config")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(config.DefaultArenaConfig(), Options{}); err == nil {
		t.Error("New without haptics should fail")
	}

	cfg := config.DefaultArenaConfig()
	cfg.Obstacles[2].Color = "plaid"
	_, err := New(cfg, Options{Haptics: haptic.NewController(0, sim.New(true), nil)})
	if err == nil || !strings.Contains(err.Error(), "obstacle 2") {
		t.Errorf("New() error = %v, expected obstacle color error", err)
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "running" || StateClosed.String() != "closed" || State(7).String() != "unknown" {
		t.Error("State.String mismatch")
	}
}
