package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/haptic-arena/internal/core"
)

// HeldKeys approximates key-held state from press and auto-repeat events.
// Terminals never report releases, so a direction counts as held until the
// hold window has passed since its last press.
type HeldKeys struct {
	window  time.Duration
	last    map[core.Action]time.Time
	pending map[core.Action]bool // Pressed since the last frame
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window:  window,
		last:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a press (or auto-repeat) of a at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.last[a] = now
	h.pending[a] = true
}

// Fill sets every held action on frame. A press is always seen by at least
// one frame, even with a zero window.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if h.pending[a] || now.Sub(t) < h.window {
			frame.Set(a)
			continue
		}
		delete(h.last, a)
	}
	clear(h.pending)
}

// Reset forgets every press.
func (h *HeldKeys) Reset() {
	clear(h.last)
	clear(h.pending)
}

// Steering moves the cursor toward the point under a held left mouse button.
type Steering struct {
	active bool
	cellX  int
	cellY  int
}

// Handle updates the target from a mouse event. It reports whether the event
// changed the steering state.
func (s *Steering) Handle(msg tea.MouseMsg) bool {
	switch {
	case msg.Action == tea.MouseActionRelease:
		changed := s.active
		s.active = false
		return changed
	case msg.Button != tea.MouseButtonLeft:
		return false
	case msg.Action == tea.MouseActionPress, msg.Action == tea.MouseActionMotion:
		s.active = true
		s.cellX, s.cellY = msg.X, msg.Y
		return true
	}
	return false
}

// Active reports whether the button is held.
func (s *Steering) Active() bool {
	return s.active
}

// Target returns the screen cell being steered toward.
func (s *Steering) Target() (x, y int) {
	return s.cellX, s.cellY
}

// Steer sets the directions that move center toward target. An axis within
// half a step of the target is left alone so the cursor settles instead of
// oscillating.
func Steer(frame *core.InputFrame, center, target core.Vec2, step float64) {
	dx := target.X - center.X
	dy := target.Y - center.Y
	half := step / 2

	switch {
	case dx > half:
		frame.Set(core.ActionRight)
	case dx < -half:
		frame.Set(core.ActionLeft)
	}
	switch {
	case dy > half:
		frame.Set(core.ActionDown)
	case dy < -half:
		frame.Set(core.ActionUp)
	}
}
