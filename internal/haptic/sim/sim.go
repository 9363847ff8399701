// Package sim provides in-memory haptic devices: a simulated controller that
// is always plugged in and records every command, and an absent one.
package sim

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haptic-arena/internal/haptic"
	"github.com/vovakirdan/haptic-arena/internal/registry"
)

// Command is one recorded Rumble call.
type Command struct {
	Strong uint16
	Weak   uint16
}

// Device is an in-memory controller. Every Rumble call is recorded, whether
// or not the device is connected, so callers can assert what was sent.
type Device struct {
	mu        sync.Mutex
	connected bool
	commands  []Command
	probes    int
	closed    bool
}

// New creates a simulated controller with the given connection state.
func New(connected bool) *Device {
	return &Device{connected: connected}
}

// Probe reports ErrNotConnected while the device is unplugged.
func (d *Device) Probe() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.probes++
	if !d.connected {
		return haptic.ErrNotConnected
	}
	return nil
}

// Rumble records the command. It fails with ErrNotConnected while unplugged.
func (d *Device) Rumble(strong, weak uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.commands = append(d.commands, Command{Strong: strong, Weak: weak})
	if !d.connected {
		return haptic.ErrNotConnected
	}
	return nil
}

// Close marks the device closed.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

// SetConnected plugs or unplugs the device.
func (d *Device) SetConnected(connected bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.connected = connected
}

// Commands returns a copy of every recorded command in order.
func (d *Device) Commands() []Command {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Command, len(d.commands))
	copy(out, d.commands)
	return out
}

// Last returns the most recent command, if any.
func (d *Device) Last() (Command, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.commands) == 0 {
		return Command{}, false
	}
	return d.commands[len(d.commands)-1], true
}

// Probes returns how many times Probe was called.
func (d *Device) Probes() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.probes
}

// Closed reports whether Close was called.
func (d *Device) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closed
}

// Reset forgets recorded commands and probe counts.
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.commands = nil
	d.probes = 0
}

func init() {
	registry.Register("sim", "simulated controller, always connected (rumble shown in the HUD)",
		func(index int, logger *log.Logger) (haptic.Device, error) {
			logger.Debug("simulated controller", "index", index)
			return New(true), nil
		})
	registry.Register("none", "no controller; feedback is skipped",
		func(int, *log.Logger) (haptic.Device, error) {
			return New(false), nil
		})
}
