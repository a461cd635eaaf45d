//go:build (linux && cgo) || windows || darwin

package device

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// AudioAvailable indicates whether a real tone generator backs NewTone.
const AudioAvailable = true

var (
	speakerMu          sync.Mutex
	speakerInitialized = false
)

func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerInitialized = true
	return nil
}

// NewTone returns a Sound generating a sine tone through the speaker.
func NewTone(cfg ToneConfig) Sound {
	return &tone{cfg: cfg.withDefaults()}
}

type tone struct {
	cfg ToneConfig
}

// Open registers a paused tone with the speaker mixer. The clip stays in the
// mixer until Close.
func (t *tone) Open() (Clip, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	streamer := &toneStreamer{
		frequency: t.cfg.Frequency,
		volume:    t.cfg.Volume,
	}
	ctrl := &beep.Ctrl{Streamer: streamer, Paused: true}
	speaker.Play(ctrl)

	return &toneClip{streamer: streamer, ctrl: ctrl}, nil
}

type toneClip struct {
	mu       sync.Mutex
	closed   bool
	streamer *toneStreamer
	ctrl     *beep.Ctrl
}

func (c *toneClip) Replay(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("replay: %w", ErrUnavailable)
	}

	speaker.Lock()
	c.streamer.samples = sampleRate.N(d)
	c.streamer.position = 0
	c.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (c *toneClip) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	speaker.Lock()
	c.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Close detaches the clip; a Ctrl without a streamer is dropped by the mixer.
func (c *toneClip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	speaker.Lock()
	c.ctrl.Streamer = nil
	speaker.Unlock()
	return nil
}

// toneStreamer plays a sine for samples frames after each replay and silence
// afterwards.
type toneStreamer struct {
	samples   int
	position  int
	frequency float64
	volume    float64
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.samples {
			samples[i][0] = 0
			samples[i][1] = 0
			continue
		}

		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(sampleRate)
		value := math.Sin(phase)

		// Fade in/out to avoid clicks
		envelope := 1.0
		fadeLen := t.samples / 20 // 5% fade
		if fadeLen < 10 {
			fadeLen = 10
		}
		if t.position < fadeLen {
			envelope = float64(t.position) / float64(fadeLen)
		} else if t.position > t.samples-fadeLen {
			envelope = float64(t.samples-t.position) / float64(fadeLen)
		}

		value *= envelope * t.volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}
