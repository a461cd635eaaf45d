package morse

import (
	"errors"
	"log/slog"
	"os"

	"github.com/gigurra/dit/cmd/common"
	"github.com/gigurra/dit/cmd/common/config"
	"github.com/gigurra/dit/cmd/morse/device"
	"github.com/spf13/viper"
)

// runtime is the configuration and the opened actuators shared by the
// commands that play Morse.
type runtime struct {
	cfg      *config.Config
	viper    *viper.Viper
	devices  device.Set
	notifier device.Notifier
	closers  []func() error
}

// newRuntime loads the config, sets up logging and opens the configured
// devices. The screen logs to a file and doesn't print notices to stderr.
func newRuntime(forScreen bool) (*runtime, error) {
	cfg, v, err := config.Load()
	if err != nil {
		return nil, err
	}
	r := &runtime{cfg: cfg, viper: v}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logFile := cfg.Log.File
	if forScreen && logFile == "" {
		logFile = common.ScreenLogPath()
	}
	closeLog, err := common.SetupLogging(level, logFile)
	if err != nil {
		return nil, err
	}
	r.closers = append(r.closers, closeLog)

	if cfg.Devices.Sound {
		r.devices.Sound = device.NewTone(device.ToneConfig{
			Frequency: cfg.Tone.Frequency,
			Volume:    cfg.Tone.Volume,
		})
		if !device.AudioAvailable {
			slog.Info("audio requires cgo on this platform, using the system beeper")
		}
	}

	if cfg.GPIO.Enabled {
		g, err := device.OpenGPIO(device.GPIOConfig{
			TorchPin:     cfg.GPIO.TorchPin,
			VibrationPin: cfg.GPIO.VibrationPin,
			Pulse:        cfg.GPIO.Pulse,
		})
		if err != nil {
			slog.Warn("gpio unavailable, continuing without torch and vibration", "error", err)
		} else {
			r.closers = append(r.closers, g.Close)
			if cfg.Devices.Light {
				r.devices.Light = g.Torch()
			}
			if cfg.Devices.Haptic {
				r.devices.Haptic = g.Vibration()
			}
		}
	}

	var notifiers []device.Notifier
	if !forScreen {
		notifiers = append(notifiers, &device.WriterNotifier{W: os.Stderr})
	}
	if cfg.Devices.Notify {
		notifiers = append(notifiers, device.NewDesktopNotifier("dit"))
	}
	r.notifier = device.Notifiers(notifiers...)

	return r, nil
}

func (r *runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}
