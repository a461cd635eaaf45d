//go:build linux

package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

var (
	rpioOpen  = rpio.Open
	rpioClose = rpio.Close
)

// GPIO drives actuators wired to the pins of a single board computer.
type GPIO struct {
	mu     sync.Mutex
	cfg    GPIOConfig
	closed bool
	pulse  *time.Timer
}

// OpenGPIO maps the GPIO memory. Close must be called to unmap it.
func OpenGPIO(cfg GPIOConfig) (*GPIO, error) {
	if err := rpioOpen(); err != nil {
		return nil, fmt.Errorf("failed to open gpio: %w", err)
	}
	return &GPIO{cfg: cfg}, nil
}

// Torch returns the LED on the torch pin, or nil when none is configured.
func (g *GPIO) Torch() Light {
	if g.cfg.TorchPin <= 0 {
		return nil
	}
	pin := rpio.Pin(g.cfg.TorchPin)
	pin.Output()
	pin.Low()
	return LightFunc(func(on bool) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed {
			return ErrUnavailable
		}
		if on {
			pin.High()
		} else {
			pin.Low()
		}
		return nil
	})
}

// Vibration returns the motor on the vibration pin, or nil when none is
// configured. Impact raises the pin and lowers it again from a timer.
func (g *GPIO) Vibration() Haptic {
	if g.cfg.VibrationPin <= 0 {
		return nil
	}
	pin := rpio.Pin(g.cfg.VibrationPin)
	pin.Output()
	pin.Low()
	return HapticFunc(func(intensity Intensity) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed {
			return ErrUnavailable
		}
		if g.pulse != nil {
			g.pulse.Stop()
		}
		pin.High()
		g.pulse = time.AfterFunc(pulseFor(g.cfg.Pulse, intensity), func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if !g.closed {
				pin.Low()
			}
		})
		return nil
	})
}

// Close switches every configured pin off and unmaps the GPIO memory.
func (g *GPIO) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true
	if g.pulse != nil {
		g.pulse.Stop()
	}
	for _, p := range []int{g.cfg.TorchPin, g.cfg.VibrationPin} {
		if p > 0 {
			rpio.Pin(p).Low()
		}
	}
	return rpioClose()
}
