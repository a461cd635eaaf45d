package screen

import (
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/gigurra/dit/cmd/morse/code"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/google/uuid"
)

// Direction says which field the user is typing into.
type Direction int

const (
	// Encode turns the text field into Morse.
	Encode Direction = iota
	// Decode turns the Morse field into text.
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "morse → text"
	}
	return "text → morse"
}

// Session is everything the screen knows about one visit. It is created when
// the screen opens and dropped when it closes.
type Session struct {
	ID        string
	Direction Direction
	Text      string
	Morse     string
	Speed     float64
	Theme     string
	// Active is true while a playback runs.
	Active bool
	// Lit mirrors the light actuator and drives the flash panel.
	Lit    bool
	Notice *device.Notice
}

func NewSession(cfg *config.Config) Session {
	return Session{
		ID:        uuid.NewString(),
		Direction: Encode,
		Speed:     cfg.Speed,
		Theme:     cfg.UI.Theme,
	}
}

// Output is the read-only counterpart of whatever the user typed.
func (s Session) Output() string {
	if s.Direction == Decode {
		return code.Decode(s.Morse)
	}
	return code.Encode(s.Text)
}

// PlayableMorse is the Morse string a play request sends to the sequencer.
func (s Session) PlayableMorse() string {
	if s.Direction == Decode {
		return s.Morse
	}
	return code.Encode(s.Text)
}

// Copyable is what the copy action puts on the clipboard: the Morse string
// when encoding and the decoded text when decoding.
func (s Session) Copyable() string {
	return s.Output()
}

// ToggleTheme flips between the dark and light theme.
func (s Session) ToggleTheme() Session {
	if s.Theme == config.ThemeLight {
		s.Theme = config.ThemeDark
	} else {
		s.Theme = config.ThemeLight
	}
	return s
}
