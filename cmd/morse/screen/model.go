// Package screen is the interactive single-screen front end: a text field, a
// Morse field, the transcoded output, a flash panel mirroring the light and
// the play, copy, speed and theme actions.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/gigurra/dit/cmd/morse/sequencer"
)

const (
	speedStep     = 0.25
	noticeTimeout = 3 * time.Second
	eventBuffer   = 256
)

// Player plays a Morse string; *sequencer.Sequencer satisfies it.
type Player interface {
	Play(ctx context.Context, morse string, speed float64) error
	Speed(speed float64) float64
}

type (
	torchMsg  bool
	activeMsg bool
	noticeMsg device.Notice
	configMsg struct{ cfg *config.Config }

	playDoneMsg struct{ err error }
	clearNoticeMsg struct{ seq int }
)

// Model is the bubbletea model of the screen.
type Model struct {
	ctx       context.Context
	session   Session
	text      textinput.Model
	morse     textinput.Model
	player    Player
	clipboard device.Clipboard
	notifier  device.Notifier
	events    chan tea.Msg
	noticeSeq int
	theme     theme
	width     int
	height    int
	log       *slog.Logger
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listen(m.events))
}

// listen forwards the next event pushed by the actuators, the sequencer or the
// config watcher into the update loop.
func listen(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// Session returns the current session state.
func (m Model) Session() Session {
	return m.session
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case torchMsg:
		m.session.Lit = bool(msg)
		return m, listen(m.events)

	case activeMsg:
		m.session.Active = bool(msg)
		if !m.session.Active {
			m.session.Lit = false
		}
		return m, listen(m.events)

	case noticeMsg:
		cmd := m.showNotice(device.Notice(msg))
		return m, tea.Batch(cmd, listen(m.events))

	case configMsg:
		m.session.Speed = m.player.Speed(msg.cfg.Speed)
		m.session.Theme = msg.cfg.UI.Theme
		m.theme = newTheme(m.session.Theme)
		return m, listen(m.events)

	case playDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.log.Debug("play request ended with error", "error", msg.err)
		}
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq && m.session.Notice != nil && !m.session.Notice.Blocking {
			m.session.Notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// A blocking notice swallows keys until it is dismissed.
	if m.session.Notice != nil && m.session.Notice.Blocking {
		switch msg.String() {
		case "enter", "esc", " ":
			m.session.Notice = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.session.Notice != nil {
			m.session.Notice = nil
			return m, nil
		}
		return m, tea.Quit
	case "tab", "shift+tab":
		return m.toggleDirection()
	case "enter":
		return m, m.play()
	case "ctrl+y":
		return m.copy()
	case "up":
		m.session.Speed = m.player.Speed(m.session.Speed + speedStep)
		return m, nil
	case "down":
		m.session.Speed = m.player.Speed(m.session.Speed - speedStep)
		return m, nil
	case "ctrl+t":
		m.session = m.session.ToggleTheme()
		m.theme = newTheme(m.session.Theme)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.session.Direction == Decode {
		m.morse, cmd = m.morse.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	m.session.Text = m.text.Value()
	m.session.Morse = m.morse.Value()
	return m, cmd
}

func (m Model) toggleDirection() (tea.Model, tea.Cmd) {
	if m.session.Direction == Encode {
		m.session.Direction = Decode
		m.text.Blur()
		cmd := m.morse.Focus()
		return m, cmd
	}
	m.session.Direction = Encode
	m.morse.Blur()
	cmd := m.text.Focus()
	return m, cmd
}

func (m Model) play() tea.Cmd {
	ctx, player := m.ctx, m.player
	morse, speed := m.session.PlayableMorse(), m.session.Speed
	m.log.Debug("play requested", "morse", morse, "speed", speed)
	return func() tea.Msg {
		return playDoneMsg{err: player.Play(ctx, morse, speed)}
	}
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	text := m.session.Copyable()
	if text == "" {
		cmd := m.notify(device.Notice{
			Level:   device.LevelWarning,
			Message: "Nothing to copy yet.",
		})
		return m, cmd
	}
	if err := m.clipboard.Copy(text); err != nil {
		m.log.Error("copy failed", "error", err)
		cmd := m.notify(device.Notice{
			Level:   device.LevelError,
			Title:   "Copy failed",
			Message: err.Error(),
		})
		return m, cmd
	}

	what := "Morse code"
	if m.session.Direction == Decode {
		what = "Text"
	}
	cmd := m.notify(device.CopiedNotice(what))
	return m, cmd
}

// notify shows a notice raised by the screen itself and forwards it to the
// outside notifier. Notices from the sequencer arrive through the events
// channel and have already been forwarded.
func (m *Model) notify(n device.Notice) tea.Cmd {
	m.notifier.Notify(n)
	return m.showNotice(n)
}

func (m *Model) showNotice(n device.Notice) tea.Cmd {
	m.noticeSeq++
	m.session.Notice = &n
	if n.Blocking {
		return nil
	}
	seq := m.noticeSeq
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

var _ Player = (*sequencer.Sequencer)(nil)
