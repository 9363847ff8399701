// Package haptic drives gamepad vibration behind a small Device interface so
// the collision feedback logic can run against real hardware, an audio
// stand-in, or an in-memory fake.
package haptic

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// MaxMagnitude is the largest motor magnitude a device accepts.
const MaxMagnitude = math.MaxUint16

var (
	// ErrNotConnected is returned by Probe when no controller answers at the index.
	ErrNotConnected = errors.New("haptic: controller not connected")

	// ErrUnsupported is returned when a backend cannot run on this platform.
	ErrUnsupported = errors.New("haptic: backend not supported on this platform")
)

// Device is a single vibration-capable controller in its native units.
// Strong drives the low-frequency (left) motor, weak the high-frequency
// (right) motor.
type Device interface {
	// Probe queries the device. A nil error means it is connected right now.
	Probe() error

	// Rumble sets both motor magnitudes. Zero on both stops vibration.
	Rumble(strong, weak uint16) error

	// Close releases any handle held on the device.
	Close() error
}

// Controller issues normalized vibration commands to the device at a fixed
// controller index. It caches nothing between calls.
type Controller struct {
	index  int
	device Device
	logger *log.Logger
}

// NewController wraps dev, addressed by index. A nil logger discards output.
func NewController(index int, dev Device, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		index:  index,
		device: dev,
		logger: logger,
	}
}

// Index returns the controller index this controller addresses.
func (c *Controller) Index() int {
	return c.index
}

// IsConnected re-queries the device on every call.
func (c *Controller) IsConnected() bool {
	return c.device.Probe() == nil
}

// SetVibration maps left/right intensities in [0,1] linearly onto
// [0, MaxMagnitude] and sends them. Out-of-range input is not clamped here;
// it saturates at the ends of the native range. Device errors are dropped:
// a disconnected device simply does not vibrate.
func (c *Controller) SetVibration(left, right float64) {
	strong, weak := Magnitude(left), Magnitude(right)
	if err := c.device.Rumble(strong, weak); err != nil {
		c.logger.Debug("rumble failed", "controller", c.index, "strong", strong, "weak", weak, "error", err)
	}
}

// StopVibration is SetVibration(0, 0).
func (c *Controller) StopVibration() {
	c.SetVibration(0, 0)
}

// Close releases the device. It sends no command; stopping the motors is the
// caller's job so the final stop is issued once.
func (c *Controller) Close() error {
	return c.device.Close()
}

// Magnitude converts a normalized intensity to the device's native range.
// Values outside [0,1] (and NaN) saturate to the nearest representable end.
func Magnitude(v float64) uint16 {
	scaled := v * MaxMagnitude
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= MaxMagnitude:
		return MaxMagnitude
	default:
		return uint16(scaled)
	}
}
