// Package config provides YAML-based arena configuration loading and
// validation for the haptic arena.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/haptic-arena/internal/core"
)

// ArenaConfig contains the complete arena setup.
type ArenaConfig struct {
	Window    WindowConfig     `yaml:"window"`
	Cursor    CursorConfig     `yaml:"cursor"`
	Input     InputConfig      `yaml:"input"`
	Haptics   HapticsConfig    `yaml:"haptics"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

// WindowConfig defines the world size and frame rate.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	FPS    int     `yaml:"fps"`
}

// CursorConfig defines the player-controlled circle.
type CursorConfig struct {
	X      float64 `yaml:"x"` // Top-left of the bounding square
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // World units per frame per held direction
	Color  string  `yaml:"color"`
}

// InputConfig defines how terminal input is turned into held directions.
type InputConfig struct {
	HoldMS int  `yaml:"hold_ms"`
	Mouse  bool `yaml:"mouse"`
}

// HapticsConfig selects the vibration backend.
type HapticsConfig struct {
	Backend    string `yaml:"backend"`
	Controller int    `yaml:"controller"`
}

// ObstacleConfig defines one static obstacle.
type ObstacleConfig struct {
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Color     string  `yaml:"color"`
	Intensity float64 `yaml:"intensity"` // Vibration in [0,1]
	Bouncy    bool    `yaml:"bouncy"`
}

// HoldWindow returns the key hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Rect returns the obstacle's rectangle in world space.
func (o ObstacleConfig) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Validate reports every problem with the configuration at once.
func (c ArenaConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("window fps must be positive, got %d", c.Window.FPS))
	}
	if c.Cursor.Radius <= 0 {
		errs = append(errs, fmt.Errorf("cursor radius must be positive, got %v", c.Cursor.Radius))
	}
	if c.Cursor.Speed <= 0 {
		errs = append(errs, fmt.Errorf("cursor speed must be positive, got %v", c.Cursor.Speed))
	}
	if _, ok := core.ParseColor(c.Cursor.Color); !ok {
		errs = append(errs, fmt.Errorf("cursor color %q is unknown", c.Cursor.Color))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input hold_ms must not be negative, got %d", c.Input.HoldMS))
	}
	if c.Haptics.Backend == "" {
		errs = append(errs, errors.New("haptics backend must be set"))
	}
	if c.Haptics.Controller < 0 {
		errs = append(errs, fmt.Errorf("haptics controller index must not be negative, got %d", c.Haptics.Controller))
	}
	if len(c.Obstacles) == 0 {
		errs = append(errs, errors.New("at least one obstacle is required"))
	}

	for i, o := range c.Obstacles {
		name := fmt.Sprintf("obstacle %d (%s)", i, o.Kind)
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive, got %vx%v", name, o.Width, o.Height))
		}
		if !(o.Intensity >= 0 && o.Intensity <= 1) {
			errs = append(errs, fmt.Errorf("%s: intensity must be in [0,1], got %v", name, o.Intensity))
		}
		if _, ok := core.ParseColor(o.Color); !ok {
			errs = append(errs, fmt.Errorf("%s: color %q is unknown", name, o.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arena: %w", errors.Join(errs...))
	}
	return nil
}
