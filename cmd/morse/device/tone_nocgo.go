//go:build !(linux && cgo) && !windows && !darwin

package device

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// AudioAvailable indicates whether a real tone generator backs NewTone.
// Without cgo the tone falls back to the system beeper.
const AudioAvailable = false

var beeepBeep = beeep.Beep

// NewTone returns a Sound that asks the system beeper for each tone. The
// beeper cannot be interrupted, so Stop is a no-op.
func NewTone(cfg ToneConfig) Sound {
	return &beeperTone{cfg: cfg.withDefaults()}
}

type beeperTone struct {
	cfg ToneConfig
}

func (t *beeperTone) Open() (Clip, error) {
	return &beeperClip{frequency: t.cfg.Frequency}, nil
}

type beeperClip struct {
	mu        sync.Mutex
	closed    bool
	frequency float64
}

func (c *beeperClip) Replay(d time.Duration) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrUnavailable
	}

	go func() {
		if err := beeepBeep(c.frequency, int(d.Milliseconds())); err != nil {
			slog.Debug("beeper failed", "error", err)
		}
	}()
	return nil
}

func (c *beeperClip) Stop() error { return nil }

func (c *beeperClip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
