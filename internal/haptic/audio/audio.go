// Package audio stands in for a gamepad by playing the rumble through the
// speakers: a low drone whose loudness follows the motor magnitudes, with the
// strong motor on the left channel and the weak motor on the right.
package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/haptic-arena/internal/haptic"
	"github.com/vovakirdan/haptic-arena/internal/registry"
)

const (
	sampleRate = beep.SampleRate(44100)

	strongFreq = 45.0 // Hz, left channel
	weakFreq   = 110.0
	volume     = 0.35 // Peak amplitude at full magnitude
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio output once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	return speakerErr
}

// RumbleStreamer is a stereo beep.Streamer whose per-channel loudness is set
// from another goroutine.
type RumbleStreamer struct {
	sr     beep.SampleRate
	strong atomic.Uint32
	weak   atomic.Uint32
	pos    int
}

// NewRumbleStreamer creates a silent rumble streamer.
func NewRumbleStreamer(sr beep.SampleRate) *RumbleStreamer {
	return &RumbleStreamer{sr: sr}
}

// Set changes the motor magnitudes heard from the next buffer on.
func (r *RumbleStreamer) Set(strong, weak uint16) {
	r.strong.Store(uint32(strong))
	r.weak.Store(uint32(weak))
}

func (r *RumbleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	left := volume * float64(r.strong.Load()) / haptic.MaxMagnitude
	right := volume * float64(r.weak.Load()) / haptic.MaxMagnitude

	for i := range samples {
		t := float64(r.pos) / float64(r.sr)

		// Square-ish drone: fundamental plus a third harmonic for grit
		s := math.Sin(2*math.Pi*strongFreq*t) + 0.3*math.Sin(2*math.Pi*strongFreq*3*t)
		w := math.Sin(2*math.Pi*weakFreq*t) + 0.3*math.Sin(2*math.Pi*weakFreq*3*t)

		samples[i][0] = left * s / 1.3
		samples[i][1] = right * w / 1.3
		r.pos++
	}
	return len(samples), true
}

func (r *RumbleStreamer) Err() error {
	return nil
}

// Device is the speaker pretending to be controller 0.
type Device struct {
	index    int
	logger   *log.Logger
	streamer *RumbleStreamer
	ctrl     *beep.Ctrl

	mu      sync.Mutex
	playing bool
}

// New creates the audio rumble device for the given controller index.
// Only index 0 is ever connected.
func New(index int, logger *log.Logger) *Device {
	s := NewRumbleStreamer(sampleRate)
	return &Device{
		index:    index,
		logger:   logger,
		streamer: s,
		ctrl:     &beep.Ctrl{Streamer: s},
	}
}

// Probe reports whether the speaker is usable for this index.
func (d *Device) Probe() error {
	if d.index != 0 {
		return haptic.ErrNotConnected
	}
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("%w: audio output: %v", haptic.ErrNotConnected, err)
	}
	return nil
}

// Rumble sets the drone loudness, starting playback on first use.
func (d *Device) Rumble(strong, weak uint16) error {
	if err := d.Probe(); err != nil {
		return err
	}

	d.streamer.Set(strong, weak)

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.playing {
		speaker.Play(d.ctrl)
		d.playing = true
		d.logger.Debug("audio rumble started", "rate", int(sampleRate))
		return nil
	}

	speaker.Lock()
	d.ctrl.Paused = strong == 0 && weak == 0
	speaker.Unlock()
	return nil
}

// Close silences the drone. The speaker itself stays open for the process.
func (d *Device) Close() error {
	d.streamer.Set(0, 0)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.playing {
		speaker.Lock()
		d.ctrl.Paused = true
		speaker.Unlock()
	}
	return nil
}

func init() {
	registry.Register("audio", "speaker rumble stand-in (strong motor left, weak motor right)",
		func(index int, logger *log.Logger) (haptic.Device, error) {
			return New(index, logger), nil
		})
}
