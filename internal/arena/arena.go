// Package arena implements the haptic collision loop: a circular cursor moved
// by held directions, a fixed list of rectangular obstacles, and vibration
// feedback scaled by the intensity of whichever obstacle the cursor touches.
package arena

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/core"
)

// Haptics is the vibration capability the arena drives.
// *haptic.Controller satisfies it.
type Haptics interface {
	IsConnected() bool
	SetVibration(left, right float64)
	StopVibration()
}

// State is the loop state.
type State int

const (
	StateRunning State = iota
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled circle. Pos is the top-left corner of its
// bounding square.
type Actor struct {
	Pos    core.Vec2
	Radius float64
	Step   float64
	Color  core.Color
}

// Center returns the centre of the circle.
func (a Actor) Center() core.Vec2 {
	return core.Vec2{X: a.Pos.X + a.Radius, Y: a.Pos.Y + a.Radius}
}

// Obstacle is a static rectangle with a vibration intensity.
// Bouncy and Kind are descriptive only; feedback depends on Intensity alone.
type Obstacle struct {
	Rect      core.Rect
	Color     core.Color
	Intensity float64
	Bouncy    bool
	Kind      string
}

// FrameResult describes what happened during one Step.
type FrameResult struct {
	State     State
	Colliding bool
	Hit       int     // Index of the obstacle touched this frame, -1 if none
	Rumble    float64 // Intensity commanded this frame (0 when stopped or skipped)
}

// Arena owns the actor, the obstacles and the haptics for one run.
type Arena struct {
	world     core.Vec2
	title     string
	actor     Actor
	obstacles []Obstacle
	haptics   Haptics
	backend   string
	logger    *log.Logger

	state     State
	last      FrameResult
	connected bool
	frames    int
}

// Options carries the collaborators of an Arena.
type Options struct {
	Haptics Haptics
	Backend string // Shown in the HUD
	Logger  *log.Logger
}

// New builds an arena from a validated config.
func New(cfg config.ArenaConfig, opts Options) (*Arena, error) {
	if opts.Haptics == nil {
		return nil, errors.New("arena: haptics is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cursorColor, ok := core.ParseColor(cfg.Cursor.Color)
	if !ok {
		return nil, fmt.Errorf("arena: unknown cursor color %q", cfg.Cursor.Color)
	}

	obstacles := make([]Obstacle, 0, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		c, ok := core.ParseColor(o.Color)
		if !ok {
			return nil, fmt.Errorf("arena: obstacle %d: unknown color %q", i, o.Color)
		}
		obstacles = append(obstacles, Obstacle{
			Rect:      o.Rect(),
			Color:     c,
			Intensity: o.Intensity,
			Bouncy:    o.Bouncy,
			Kind:      o.Kind,
		})
	}

	return &Arena{
		world: core.Vec2{X: cfg.Window.Width, Y: cfg.Window.Height},
		title: cfg.Window.Title,
		actor: Actor{
			Pos:    core.Vec2{X: cfg.Cursor.X, Y: cfg.Cursor.Y},
			Radius: cfg.Cursor.Radius,
			Step:   cfg.Cursor.Speed,
			Color:  cursorColor,
		},
		obstacles: obstacles,
		haptics:   opts.Haptics,
		backend:   opts.Backend,
		logger:    opts.Logger,
		state:     StateRunning,
		last:      FrameResult{State: StateRunning, Hit: -1},
	}, nil
}

// Actor returns a copy of the actor.
func (a *Arena) Actor() Actor {
	return a.actor
}

// Obstacles returns the obstacles in declaration order.
func (a *Arena) Obstacles() []Obstacle {
	out := make([]Obstacle, len(a.obstacles))
	copy(out, a.obstacles)
	return out
}

// State returns the loop state.
func (a *Arena) State() State {
	return a.state
}

// Last returns the result of the most recent Step.
func (a *Arena) Last() FrameResult {
	return a.last
}

// Frames returns how many frames ran while Running.
func (a *Arena) Frames() int {
	return a.frames
}

// Step runs one frame. Once Closed it does nothing.
func (a *Arena) Step(in core.InputFrame) FrameResult {
	if a.state == StateClosed {
		return a.last
	}

	if in.Has(core.ActionClose) || in.Has(core.ActionEscape) {
		a.Close()
		return a.last
	}

	a.frames++
	previous := a.actor.Pos

	// Each held direction moves independently; diagonals are not normalised.
	if in.Has(core.ActionLeft) {
		a.actor.Pos.X -= a.actor.Step
	}
	if in.Has(core.ActionRight) {
		a.actor.Pos.X += a.actor.Step
	}
	if in.Has(core.ActionUp) {
		a.actor.Pos.Y -= a.actor.Step
	}
	if in.Has(core.ActionDown) {
		a.actor.Pos.Y += a.actor.Step
	}

	result := FrameResult{State: StateRunning, Hit: -1}
	center := a.actor.Center()

	for i, o := range a.obstacles {
		if !core.CircleIntersectsRect(center, a.actor.Radius, o.Rect) {
			continue
		}
		result.Colliding = true
		result.Hit = i

		if a.isConnected() {
			a.haptics.SetVibration(o.Intensity, o.Intensity)
			result.Rumble = o.Intensity
		}

		a.actor.Pos = previous
		break
	}

	if !result.Colliding && a.isConnected() {
		a.haptics.StopVibration()
	}

	if result.Hit >= 0 && result.Hit != a.last.Hit {
		o := a.obstacles[result.Hit]
		a.logger.Debug("contact", "kind", o.Kind, "intensity", o.Intensity, "bouncy", o.Bouncy, "frame", a.frames)
	}

	a.last = result
	return result
}

// isConnected queries the controller and logs connection changes.
func (a *Arena) isConnected() bool {
	connected := a.haptics.IsConnected()
	if connected != a.connected {
		if connected {
			a.logger.Info("controller connected", "backend", a.backend)
		} else {
			a.logger.Info("controller disconnected", "backend", a.backend)
		}
		a.connected = connected
	}
	return connected
}

// Close leaves Running and issues the final stop command. Calling it again
// has no effect.
func (a *Arena) Close() {
	if a.state == StateClosed {
		return
	}
	a.state = StateClosed
	a.last = FrameResult{State: StateClosed, Hit: -1}
	a.haptics.StopVibration()
	a.logger.Info("arena closed", "frames", a.frames)
}
