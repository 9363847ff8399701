// Package evdev drives rumble motors of gamepads exposed by the Linux input
// subsystem. Controller index N is the Nth joystick event node under
// /dev/input/by-id, sorted by name.
package evdev

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haptic-arena/internal/haptic"
	"github.com/vovakirdan/haptic-arena/internal/registry"
)

// DefaultPattern matches joystick event nodes created by udev.
const DefaultPattern = "/dev/input/by-id/*-event-joystick"

// Discover returns the device nodes matching pattern, sorted by name.
func Discover(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("evdev: bad pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Device is the force-feedback capable gamepad at a controller index.
// The node is resolved again on every call, so hot-plugging is picked up;
// the open handle is only kept while the resolved node stays the same.
type Device struct {
	index   int
	pattern string
	logger  *log.Logger

	mu   sync.Mutex
	path string
	ff   *rumbler
}

// New creates a device for the controller at index among nodes matching pattern.
func New(index int, pattern string, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Device{
		index:   index,
		pattern: pattern,
		logger:  logger,
	}
}

// resolve finds the node for the device's index.
func (d *Device) resolve() (string, error) {
	if d.index < 0 {
		return "", haptic.ErrNotConnected
	}
	paths, err := Discover(d.pattern)
	if err != nil {
		return "", err
	}
	if d.index >= len(paths) {
		return "", haptic.ErrNotConnected
	}
	return paths[d.index], nil
}

// Probe reports whether a node exists for the index right now.
func (d *Device) Probe() error {
	path, err := d.resolve()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %v", haptic.ErrNotConnected, err)
	}
	return nil
}

// Rumble uploads a rumble effect with the given magnitudes and plays it.
// Zero on both motors stops the effect instead.
func (d *Device) Rumble(strong, weak uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	path, err := d.resolve()
	if err != nil {
		d.release()
		return err
	}

	if d.ff == nil || d.path != path {
		d.release()
		ff, err := openRumbler(path)
		if err != nil {
			return fmt.Errorf("evdev: open %s: %w", path, err)
		}
		d.ff = ff
		d.path = path
		d.logger.Info("opened force-feedback device", "index", d.index, "path", path)
	}

	if err := d.ff.rumble(strong, weak); err != nil {
		d.release()
		return fmt.Errorf("evdev: rumble %s: %w", path, err)
	}
	return nil
}

// Close releases the device handle, removing the uploaded effect.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.release()
}

// release closes the open handle, if any. Caller holds d.mu.
func (d *Device) release() error {
	if d.ff == nil {
		return nil
	}
	err := d.ff.close()
	d.ff = nil
	d.path = ""
	return err
}

func init() {
	registry.Register("evdev", "Linux force-feedback gamepad (/dev/input/by-id/*-event-joystick)",
		func(index int, logger *log.Logger) (haptic.Device, error) {
			if !supported {
				return nil, haptic.ErrUnsupported
			}
			return New(index, DefaultPattern, logger), nil
		})
}
