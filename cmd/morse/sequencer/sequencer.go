// Package sequencer plays a Morse string on a set of actuators.
//
// A play request is turned into a list of steps (see Plan) that are executed
// one after another on the calling goroutine. Each step switches the light,
// the tone and the haptic emitter on or off and then waits on a Clock.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/google/uuid"
)

var (
	ErrNoMessage      = errors.New("no message to play")
	ErrAlreadyPlaying = errors.New("already playing")
)

// State of a Sequencer.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
)

// Clock waits between steps.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type wallClock struct{}

func (wallClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WallClock sleeps on real timers.
var WallClock Clock = wallClock{}

type Options struct {
	Devices  device.Set
	Notifier device.Notifier
	Clock    Clock
	MinSpeed float64
	MaxSpeed float64
	// OnActive is called whenever the active flag flips, in flip order. It
	// runs on the goroutine that called Play and must not call back into the
	// Sequencer.
	OnActive func(active bool)
	Logger   *slog.Logger
}

// Sequencer plays one Morse string at a time.
type Sequencer struct {
	// flipMu is held across a state flip and its OnActive call so that a
	// run starting right after another one finishes reports after it.
	flipMu sync.Mutex
	mu     sync.Mutex
	state  State
	active bool

	devices  device.Set
	notifier device.Notifier
	clock    Clock
	minSpeed float64
	maxSpeed float64
	onActive func(bool)
	log      *slog.Logger
}

func New(opts Options) *Sequencer {
	s := &Sequencer{
		state:    StateIdle,
		devices:  opts.Devices.WithDefaults(),
		notifier: opts.Notifier,
		clock:    opts.Clock,
		minSpeed: opts.MinSpeed,
		maxSpeed: opts.MaxSpeed,
		onActive: opts.OnActive,
		log:      opts.Logger,
	}
	if s.notifier == nil {
		s.notifier = device.NotifierFunc(func(device.Notice) {})
	}
	if s.clock == nil {
		s.clock = WallClock
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Active reports whether a playback is running.
func (s *Sequencer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Speed returns speed bounded to the configured range.
func (s *Sequencer) Speed(speed float64) float64 {
	return ClampSpeed(speed, s.minSpeed, s.maxSpeed)
}

// Play blocks until morse has been played. Blank content is refused with
// ErrNoMessage and a request while another playback runs is refused with
// ErrAlreadyPlaying; neither touches the running state. A failing actuator
// aborts the playback. In every case the user is told through the notifier
// and the sequencer is idle again when Play returns.
//
// ctx is only meant to stop playback on shutdown; callers have no other way
// to abort a running sequence.
func (s *Sequencer) Play(ctx context.Context, morse string, speed float64) error {
	if code.IsBlank(morse) {
		s.notifier.Notify(device.Notice{
			Level:    device.LevelWarning,
			Title:    "No message",
			Message:  "There is nothing to play. Type a message first.",
			Blocking: true,
		})
		return ErrNoMessage
	}

	if !s.begin() {
		s.notifier.Notify(device.Notice{
			Level:   device.LevelInfo,
			Message: "Already playing, wait for the current message to finish.",
		})
		return ErrAlreadyPlaying
	}
	defer s.finish()

	speed = s.Speed(speed)
	steps := Plan(morse, speed)
	log := s.log.With("run", uuid.NewString())
	log.Info("playback started", "steps", len(steps), "speed", speed, "duration", Duration(steps))

	err := s.run(ctx, log, steps)
	switch {
	case err == nil:
		log.Info("playback finished")
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		log.Info("playback cancelled")
	default:
		log.Error("playback failed", "error", err)
		s.notifier.Notify(device.Notice{
			Level:   device.LevelError,
			Title:   "Playback failed",
			Message: err.Error(),
		})
	}
	return err
}

func (s *Sequencer) begin() bool {
	s.flipMu.Lock()
	defer s.flipMu.Unlock()

	s.mu.Lock()
	if s.state == StatePlaying {
		s.mu.Unlock()
		return false
	}
	s.state = StatePlaying
	s.active = true
	s.mu.Unlock()

	if s.onActive != nil {
		s.onActive(true)
	}
	return true
}

func (s *Sequencer) finish() {
	s.flipMu.Lock()
	defer s.flipMu.Unlock()

	s.mu.Lock()
	s.state = StateIdle
	s.active = false
	s.mu.Unlock()

	if s.onActive != nil {
		s.onActive(false)
	}
}

func (s *Sequencer) run(ctx context.Context, log *slog.Logger, steps []Step) (err error) {
	clip, err := s.devices.Sound.Open()
	if err != nil {
		return fmt.Errorf("failed to load sound: %w", err)
	}
	defer func() {
		if cerr := clip.Close(); cerr != nil {
			log.Warn("failed to release sound", "error", cerr)
		}
	}()
	defer func() {
		if lerr := s.devices.Light.SetTorch(false); lerr != nil && err == nil {
			err = fmt.Errorf("failed to switch light off: %w", lerr)
		}
	}()

	for i, step := range steps {
		if err := s.step(ctx, clip, step); err != nil {
			log.Debug("step failed", "index", i, "symbol", string(step.Symbol), "error", err)
			return err
		}
	}
	return nil
}

func (s *Sequencer) step(ctx context.Context, clip device.Clip, step Step) error {
	if step.Signal() {
		if err := s.devices.Light.SetTorch(true); err != nil {
			return fmt.Errorf("failed to switch light on: %w", err)
		}
		if err := clip.Replay(step.Hold); err != nil {
			return fmt.Errorf("failed to play sound: %w", err)
		}
		// Haptics are fire and forget.
		if err := s.devices.Haptic.Impact(step.intensity()); err != nil {
			s.log.Debug("haptic impulse failed", "error", err)
		}
		if err := s.clock.Sleep(ctx, step.Hold); err != nil {
			return err
		}
		if err := clip.Stop(); err != nil {
			return fmt.Errorf("failed to stop sound: %w", err)
		}
		if err := s.devices.Light.SetTorch(false); err != nil {
			return fmt.Errorf("failed to switch light off: %w", err)
		}
	} else {
		if err := s.devices.Light.SetTorch(false); err != nil {
			return fmt.Errorf("failed to switch light off: %w", err)
		}
		if err := s.clock.Sleep(ctx, step.Hold); err != nil {
			return err
		}
	}
	return s.clock.Sleep(ctx, step.Gap)
}
