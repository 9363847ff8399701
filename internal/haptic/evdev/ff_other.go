//go:build !linux || !(amd64 || arm64 || riscv64 || ppc64le || loong64)

package evdev

import "github.com/vovakirdan/haptic-arena/internal/haptic"

const supported = false

type rumbler struct{}

func openRumbler(string) (*rumbler, error) {
	return nil, haptic.ErrUnsupported
}

func (*rumbler) rumble(uint16, uint16) error { return haptic.ErrUnsupported }

func (*rumbler) close() error { return nil }
