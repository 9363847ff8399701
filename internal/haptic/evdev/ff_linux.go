//go:build linux && (amd64 || arm64 || riscv64 || ppc64le || loong64)

package evdev

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const supported = true

// Values from linux/input.h and linux/input-event-codes.h.
const (
	evFF     = 0x15
	ffRumble = 0x50
)

// ffEffect mirrors struct ff_effect on 64-bit kernels with the union
// holding struct ff_rumble_effect.
type ffEffect struct {
	Type            uint16
	ID              int16
	Direction       uint16
	TriggerButton   uint16
	TriggerInterval uint16
	ReplayLength    uint16
	ReplayDelay     uint16
	_               [2]byte
	StrongMagnitude uint16
	WeakMagnitude   uint16
	_               [28]byte
}

// inputEvent mirrors struct input_event.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// _IOW('E', nr, size)
func iow(nr, size uintptr) uintptr {
	return 1<<30 | size<<16 | 'E'<<8 | nr
}

var (
	eviocsff  = iow(0x80, unsafe.Sizeof(ffEffect{}))
	eviocrmff = iow(0x81, unsafe.Sizeof(int32(0)))
)

type rumbler struct {
	f      *os.File
	effect int16
}

func openRumbler(path string) (*rumbler, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &rumbler{f: f, effect: -1}, nil
}

func (r *rumbler) rumble(strong, weak uint16) error {
	if strong == 0 && weak == 0 {
		if r.effect < 0 {
			return nil
		}
		return r.play(0)
	}

	// Replay length 0 plays until stopped.
	e := ffEffect{
		Type:            ffRumble,
		ID:              r.effect,
		StrongMagnitude: strong,
		WeakMagnitude:   weak,
	}
	if err := r.ioctl(eviocsff, uintptr(unsafe.Pointer(&e))); err != nil {
		return err
	}
	r.effect = e.ID
	return r.play(1)
}

func (r *rumbler) play(value int32) error {
	ev := inputEvent{Type: evFF, Code: uint16(r.effect), Value: value}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unsafe.Sizeof(ev))
	_, err := r.f.Write(buf)
	return err
}

func (r *rumbler) ioctl(req, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, r.f.Fd(), req, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func (r *rumbler) close() error {
	if r.effect >= 0 {
		//nolint:errcheck // Best-effort removal, the fd is closed next anyway
		r.play(0)
		//nolint:errcheck // Best-effort removal, the fd is closed next anyway
		r.ioctl(eviocrmff, uintptr(r.effect))
	}
	return r.f.Close()
}
