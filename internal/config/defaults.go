package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena: an 800x600 world with four
// obstacles of increasing vibration intensity.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Haptic Environment",
			FPS:    60,
		},
		Cursor: CursorConfig{
			X:      400,
			Y:      300,
			Radius: 15,
			Speed:  5,
			Color:  "blue",
		},
		Input: InputConfig{
			HoldMS: 150,
			Mouse:  true,
		},
		Haptics: HapticsConfig{
			Backend:    "sim",
			Controller: 0,
		},
		Obstacles: []ObstacleConfig{
			{Kind: "solid", X: 300, Y: 200, Width: 200, Height: 50, Color: "red", Intensity: 0.7},
			{Kind: "bouncy", X: 500, Y: 400, Width: 80, Height: 80, Color: "green", Intensity: 0.5, Bouncy: true},
			{Kind: "weak", X: 200, Y: 500, Width: 120, Height: 30, Color: "yellow", Intensity: 0.3},
			{Kind: "dangerous", X: 600, Y: 100, Width: 60, Height: 60, Color: "magenta", Intensity: 0.9},
		},
	}
}

// DefaultYAML returns the embedded default arena YAML.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
