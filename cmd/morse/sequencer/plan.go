package sequencer

import (
	"time"

	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/samber/lo"
)

// Timing at speed 1. A dash is held a bit under three dots.
const (
	DotHold   = 150 * time.Millisecond
	DashHold  = 400 * time.Millisecond
	PauseHold = 300 * time.Millisecond
	Gap       = 150 * time.Millisecond
)

const (
	DefaultSpeed    = 1.0
	DefaultMinSpeed = 0.5
	DefaultMaxSpeed = 3.0
)

// Action is what a Step does with the actuators while it holds.
type Action int

const (
	ActionPause Action = iota
	ActionDot
	ActionDash
)

func (a Action) String() string {
	switch a {
	case ActionDot:
		return "dot"
	case ActionDash:
		return "dash"
	default:
		return "pause"
	}
}

// Step is one symbol of a Morse string: the action, how long it is held and
// the gap that always follows it.
type Step struct {
	Symbol rune
	Action Action
	Hold   time.Duration
	Gap    time.Duration
}

// Signal reports whether the step switches the actuators on.
func (s Step) Signal() bool {
	return s.Action == ActionDot || s.Action == ActionDash
}

func (s Step) intensity() device.Intensity {
	if s.Action == ActionDash {
		return device.IntensityMedium
	}
	return device.IntensityLight
}

// Plan turns every rune of morse into a Step. Anything that is not a dot or a
// dash is a pause. Durations are divided by speed; a speed that is not
// positive counts as 1.
func Plan(morse string, speed float64) []Step {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / speed)
	}

	steps := make([]Step, 0, len(morse))
	for _, r := range morse {
		step := Step{Symbol: r, Gap: scale(Gap)}
		switch r {
		case '.':
			step.Action = ActionDot
			step.Hold = scale(DotHold)
		case '-':
			step.Action = ActionDash
			step.Hold = scale(DashHold)
		default:
			step.Action = ActionPause
			step.Hold = scale(PauseHold)
		}
		steps = append(steps, step)
	}
	return steps
}

// Duration is the total time a plan takes to play.
func Duration(steps []Step) time.Duration {
	return lo.SumBy(steps, func(s Step) time.Duration {
		return s.Hold + s.Gap
	})
}

// ClampSpeed bounds speed to [min, max]. Bounds that are not usable fall back
// to the defaults.
func ClampSpeed(speed, min, max float64) float64 {
	if min <= 0 {
		min = DefaultMinSpeed
	}
	if max < min {
		max = lo.Max([]float64{min, DefaultMaxSpeed})
	}
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return lo.Clamp(speed, min, max)
}
