// Package device holds the actuators a Morse playback drives: a light that can
// be switched on and off, a sound clip that replays from the start, a haptic
// emitter and the clipboard and notice sinks used by the screen.
package device

import (
	"errors"
	"time"
)

// Intensity of a haptic impulse.
type Intensity int

const (
	IntensityLight Intensity = iota
	IntensityMedium
)

func (i Intensity) String() string {
	switch i {
	case IntensityLight:
		return "light"
	case IntensityMedium:
		return "medium"
	default:
		return "unknown"
	}
}

// Light is a binary light emitter, e.g. a camera torch or an LED.
type Light interface {
	SetTorch(on bool) error
}

// LightFunc adapts a function to Light.
type LightFunc func(on bool) error

func (f LightFunc) SetTorch(on bool) error { return f(on) }

// Haptic emits a short impulse. Impact must not block for the impulse duration.
type Haptic interface {
	Impact(intensity Intensity) error
}

// HapticFunc adapts a function to Haptic.
type HapticFunc func(intensity Intensity) error

func (f HapticFunc) Impact(intensity Intensity) error { return f(intensity) }

// Sound acquires a Clip for the duration of one playback.
type Sound interface {
	Open() (Clip, error)
}

// Clip is an acquired audio resource. Replay starts the clip from the
// beginning and returns without waiting for it; it is cut short after d or by
// Stop, whichever comes first. Close releases the resource and is safe to call
// more than once.
type Clip interface {
	Replay(d time.Duration) error
	Stop() error
	Close() error
}

// Clipboard is a text sink.
type Clipboard interface {
	Copy(text string) error
}

var ErrUnavailable = errors.New("device not available")

// Set bundles the actuators a playback drives. Nil members are replaced by
// no-op implementations in WithDefaults.
type Set struct {
	Light  Light
	Sound  Sound
	Haptic Haptic
}

func (s Set) WithDefaults() Set {
	if s.Light == nil {
		s.Light = Nop
	}
	if s.Sound == nil {
		s.Sound = Nop
	}
	if s.Haptic == nil {
		s.Haptic = Nop
	}
	return s
}

// Lights switches several lights together. The first error wins but every
// light is still switched.
func Lights(lights ...Light) Light {
	return LightFunc(func(on bool) error {
		var errs []error
		for _, l := range lights {
			if l == nil {
				continue
			}
			if err := l.SetTorch(on); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Haptics fans an impulse out to several emitters.
func Haptics(haptics ...Haptic) Haptic {
	return HapticFunc(func(intensity Intensity) error {
		var errs []error
		for _, h := range haptics {
			if h == nil {
				continue
			}
			if err := h.Impact(intensity); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

type nop struct{}

// Nop is a Light, Haptic, Sound and Clip that does nothing.
var Nop nop

func (nop) SetTorch(bool) error { return nil }
func (nop) Impact(Intensity) error { return nil }
func (nop) Open() (Clip, error) { return nop{}, nil }
func (nop) Replay(time.Duration) error { return nil }
func (nop) Stop() error { return nil }
func (nop) Close() error { return nil }
