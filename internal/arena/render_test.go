package arena

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/core"
)

func TestRenderDefaultArena(t *testing.T) {
	a, _ := newTestArena(t, config.DefaultArenaConfig(), true)
	a.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 25)
	a.Render(screen)

	// 800x600 world onto 80x24 cells: 10 units per column, 25 per row.
	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"solid top-left", 30, 8, ObstacleChar, core.ColorRed},
		{"solid bottom-right", 49, 9, ObstacleChar, core.ColorRed},
		{"right of solid", 50, 8, ' ', core.ColorDefault},
		{"below solid", 30, 10, ' ', core.ColorDefault},
		{"dangerous", 60, 4, ObstacleChar, core.ColorMagenta},
		{"cursor centre", 41, 12, CursorChar, core.ColorBlue},
		{"cursor edge", 40, 12, CursorChar, core.ColorBlue},
		{"below cursor", 41, 13, ' ', core.ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := screen.GetCell(tc.x, tc.y)
			if cell.Rune != tc.rune || cell.Color != tc.color {
				t.Errorf("GetCell(%d, %d) = %q/%v, expected %q/%v", tc.x, tc.y, cell.Rune, cell.Color, tc.rune, tc.color)
			}
		})
	}

	status := screen.Row(24)
	for _, want := range []string{"Haptic Environment", "sim", "connected", "rumble"} {
		if !strings.Contains(status, want) {
			t.Errorf("status row %q missing %q", status, want)
		}
	}
}

func TestRenderCursorOnTopOfObstacle(t *testing.T) {
	cfg := cursorAt(140, 125)
	cfg.Window.Title = ""
	cfg.Obstacles = []config.ObstacleConfig{
		{Kind: "floor", X: 0, Y: 0, Width: 800, Height: 600, Color: "red", Intensity: 0.4},
	}
	a, _ := newTestArena(t, cfg, true)
	a.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 25)
	a.Render(screen)

	if got := screen.Get(14, 5); got != CursorChar {
		t.Errorf("Get(14, 5) = %q, expected cursor drawn over the obstacle", got)
	}
	if got := screen.Get(0, 0); got != ObstacleChar {
		t.Errorf("Get(0, 0) = %q, expected obstacle", got)
	}
	if status := screen.Row(24); !strings.Contains(status, "touching floor 0.40") {
		t.Errorf("status row %q should name the touched obstacle", status)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	a, _ := newTestArena(t, config.DefaultArenaConfig(), true)

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		screen := core.NewScreen(size[0], size[1])
		a.Render(screen)
	}
}

func TestRumbleMeter(t *testing.T) {
	tests := []struct {
		level    float64
		expected string
	}{
		{0, "▯▯▯▯▯▯▯▯▯▯"},
		{0.7, "▮▮▮▮▮▮▮▯▯▯"},
		{0.3, "▮▮▮▯▯▯▯▯▯▯"},
		{1, "▮▮▮▮▮▮▮▮▮▮"},
		{2, "▮▮▮▮▮▮▮▮▮▮"},
		{-1, "▯▯▯▯▯▯▯▯▯▯"},
	}

	for _, tc := range tests {
		if got := RumbleMeter(tc.level); got != tc.expected {
			t.Errorf("RumbleMeter(%v) = %q, expected %q", tc.level, got, tc.expected)
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	a, _ := newTestArena(t, config.DefaultArenaConfig(), true)

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec2
	}{
		{"origin cell", 0, 0, core.Vec2{X: 5, Y: 12.5}},
		{"cursor cell", 41, 12, core.Vec2{X: 415, Y: 312.5}},
		{"status row clamps", 10, 24, core.Vec2{X: 105, Y: 587.5}},
		{"past right edge", 200, 0, core.Vec2{X: 795, Y: 12.5}},
		{"negative", -3, -3, core.Vec2{X: 5, Y: 12.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := a.ScreenToWorld(80, 25, tc.x, tc.y)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("ScreenToWorld(80, 25, %d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if got := a.ScreenToWorld(0, 0, 1, 1); got != (core.Vec2{}) {
		t.Errorf("ScreenToWorld on empty screen = %v, expected zero", got)
	}
}
