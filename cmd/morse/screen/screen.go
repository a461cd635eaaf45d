package screen

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/gigurra/dit/cmd/morse/sequencer"
	"github.com/spf13/viper"
)

type Options struct {
	Config *config.Config
	// Viper, when set, is watched for config changes.
	Viper *viper.Viper
	// Devices are driven in addition to the on-screen flash panel.
	Devices   device.Set
	Clipboard device.Clipboard
	// Notifier receives every notice in addition to the screen.
	Notifier device.Notifier
	Clock    sequencer.Clock
	Logger   *slog.Logger
}

// New creates the screen model and the session it owns. The sequencer is
// wired so that its light, active flag and notices flow back into the model.
func New(ctx context.Context, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = device.SystemClipboard{}
	}
	if opts.Notifier == nil {
		opts.Notifier = device.NotifierFunc(func(device.Notice) {})
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	session := NewSession(cfg)
	log = log.With("session", session.ID)
	events := make(chan tea.Msg, eventBuffer)

	screenLight := device.LightFunc(func(on bool) error {
		events <- torchMsg(on)
		return nil
	})
	screenNotices := device.NotifierFunc(func(n device.Notice) {
		events <- noticeMsg(n)
	})

	devices := opts.Devices.WithDefaults()
	seq := sequencer.New(sequencer.Options{
		Devices: device.Set{
			Light:  device.Lights(screenLight, devices.Light),
			Sound:  devices.Sound,
			Haptic: devices.Haptic,
		},
		Notifier: device.Notifiers(screenNotices, opts.Notifier),
		Clock:    opts.Clock,
		MinSpeed: cfg.SpeedMin,
		MaxSpeed: cfg.SpeedMax,
		OnActive: func(active bool) {
			events <- activeMsg(active)
		},
		Logger: log,
	})
	session.Speed = seq.Speed(session.Speed)

	text := textinput.New()
	text.Placeholder = "Type your message..."
	text.Prompt = "› "
	text.Focus()

	morse := textinput.New()
	morse.Placeholder = ".- -... -.-. / ..."
	morse.Prompt = "› "

	if opts.Viper != nil {
		config.Watch(opts.Viper, func(cfg *config.Config) {
			events <- configMsg{cfg: cfg}
		})
	}

	log.Info("screen opened")
	return Model{
		ctx:       ctx,
		session:   session,
		text:      text,
		morse:     morse,
		player:    seq,
		clipboard: opts.Clipboard,
		notifier:  opts.Notifier,
		events:    events,
		theme:     newTheme(session.Theme),
		log:       log,
	}
}

// Run shows the screen until the user quits. Leaving the screen cancels a
// running playback.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.log.Info("screen closed")
	}
	return err
}
