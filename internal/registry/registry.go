// Package registry provides a global registry for haptic backend factories.
// Backends register themselves in init() functions, allowing the platform
// to discover and open devices without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haptic-arena/internal/haptic"
)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens the device at the given controller index.
// Factories should not fail just because nothing is plugged in; a missing
// controller is reported later through Device.Probe.
type Factory func(index int, logger *log.Logger) (haptic.Device, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create opens a device through the named backend.
// Returns an error if the backend is not registered or the factory fails.
func Create(name string, index int, logger *log.Logger) (haptic.Device, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	dev, err := f(index, logger)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s controller %d: %w", name, index, err)
	}
	return dev, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
