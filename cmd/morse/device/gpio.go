package device

import "time"

// DefaultPulse is how long the vibration motor runs for a light impulse. A
// medium impulse runs twice as long.
const DefaultPulse = 30 * time.Millisecond

// GPIOConfig names the BCM pins wired to a torch LED and a vibration motor.
// A zero pin leaves that actuator out.
type GPIOConfig struct {
	TorchPin     int
	VibrationPin int
	Pulse        time.Duration
}

func pulseFor(base time.Duration, intensity Intensity) time.Duration {
	if base <= 0 {
		base = DefaultPulse
	}
	if intensity == IntensityMedium {
		return 2 * base
	}
	return base
}
