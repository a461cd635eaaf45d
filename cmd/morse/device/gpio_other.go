//go:build !linux

package device

import "fmt"

// GPIO is only available on linux.
type GPIO struct{}

func OpenGPIO(GPIOConfig) (*GPIO, error) {
	return nil, fmt.Errorf("gpio: %w", ErrUnavailable)
}

func (g *GPIO) Torch() Light { return nil }
func (g *GPIO) Vibration() Haptic { return nil }
func (g *GPIO) Close() error { return nil }
