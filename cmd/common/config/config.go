// Package config provides configuration loading for dit.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/dit/cmd/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. DIT_SPEED or DIT_TONE_FREQUENCY.
const EnvPrefix = "DIT"

// Config represents the dit configuration file structure.
type Config struct {
	Speed    float64       `mapstructure:"speed" yaml:"speed"`
	SpeedMin float64       `mapstructure:"speed_min" yaml:"speed_min"`
	SpeedMax float64       `mapstructure:"speed_max" yaml:"speed_max"`
	Tone     ToneConfig    `mapstructure:"tone" yaml:"tone"`
	Devices  DevicesConfig `mapstructure:"devices" yaml:"devices"`
	GPIO     GPIOConfig    `mapstructure:"gpio" yaml:"gpio"`
	UI       UIConfig      `mapstructure:"ui" yaml:"ui"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
}

type ToneConfig struct {
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"`
	Volume    float64 `mapstructure:"volume" yaml:"volume"`
}

// DevicesConfig switches individual actuators on or off.
type DevicesConfig struct {
	Sound  bool `mapstructure:"sound" yaml:"sound"`
	Light  bool `mapstructure:"light" yaml:"light"`
	Haptic bool `mapstructure:"haptic" yaml:"haptic"`
	Notify bool `mapstructure:"notify" yaml:"notify"`
}

// GPIOConfig holds BCM pin numbers for a torch LED and a vibration motor.
type GPIOConfig struct {
	Enabled      bool          `mapstructure:"enabled" yaml:"enabled"`
	TorchPin     int           `mapstructure:"torch_pin" yaml:"torch_pin"`
	VibrationPin int           `mapstructure:"vibration_pin" yaml:"vibration_pin"`
	Pulse        time.Duration `mapstructure:"pulse" yaml:"pulse"`
}

type UIConfig struct {
	// Theme is "dark" or "light".
	Theme string `mapstructure:"theme" yaml:"theme"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output instead of stderr when set. The screen always
	// logs to a file so it doesn't draw over the UI.
	File string `mapstructure:"file" yaml:"file"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Speed:    1.0,
		SpeedMin: 0.5,
		SpeedMax: 3.0,
		Tone: ToneConfig{
			Frequency: 700,
			Volume:    0.5,
		},
		Devices: DevicesConfig{
			Sound:  true,
			Light:  true,
			Haptic: true,
			Notify: false,
		},
		GPIO: GPIOConfig{
			Enabled:      false,
			TorchPin:     17,
			VibrationPin: 27,
			Pulse:        30 * time.Millisecond,
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the dit config directory ($XDG_CONFIG_HOME/dit or ~/.config/dit).
func Dir() string {
	return common.ConfigDir()
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// New returns a viper instance for the config file at path with defaults and
// environment overrides registered.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("speed", def.Speed)
	v.SetDefault("speed_min", def.SpeedMin)
	v.SetDefault("speed_max", def.SpeedMax)
	v.SetDefault("tone.frequency", def.Tone.Frequency)
	v.SetDefault("tone.volume", def.Tone.Volume)
	v.SetDefault("devices.sound", def.Devices.Sound)
	v.SetDefault("devices.light", def.Devices.Light)
	v.SetDefault("devices.haptic", def.Devices.Haptic)
	v.SetDefault("devices.notify", def.Devices.Notify)
	v.SetDefault("gpio.enabled", def.GPIO.Enabled)
	v.SetDefault("gpio.torch_pin", def.GPIO.TorchPin)
	v.SetDefault("gpio.vibration_pin", def.GPIO.VibrationPin)
	v.SetDefault("gpio.pulse", def.GPIO.Pulse)
	v.SetDefault("ui.theme", def.UI.Theme)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	return v
}

// Load reads ~/.config/dit/config.yaml, a .env file in the working directory
// and DIT_ environment variables. A missing file yields the defaults.
func Load() (*Config, *viper.Viper, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := New(Path())
	cfg, err := Read(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Read (re)reads the config file behind v and validates the result.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks config values for errors.
func (c *Config) Validate() error {
	if c.SpeedMin <= 0 {
		return fmt.Errorf("speed_min must be positive, got %v", c.SpeedMin)
	}
	if c.SpeedMax < c.SpeedMin {
		return fmt.Errorf("speed_max (%v) must not be below speed_min (%v)", c.SpeedMax, c.SpeedMin)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	if c.Tone.Frequency < 0 {
		return fmt.Errorf("tone.frequency must not be negative, got %v", c.Tone.Frequency)
	}
	if c.Tone.Volume < 0 || c.Tone.Volume > 1 {
		return fmt.Errorf("tone.volume must be between 0 and 1, got %v", c.Tone.Volume)
	}
	switch c.UI.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("ui.theme must be %q or %q, got %q", ThemeDark, ThemeLight, c.UI.Theme)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel parses a log level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log.level %q: %w", s, err)
	}
	return level, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Watch calls onChange with the re-read config whenever the file behind v
// changes. Invalid edits are logged and skipped.
func Watch(v *viper.Viper, onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Read(v)
		if err != nil {
			slog.Warn("ignoring config change", "file", e.Name, "error", err)
			return
		}
		slog.Info("config reloaded", "file", e.Name)
		onChange(cfg)
	})
	v.WatchConfig()
}
