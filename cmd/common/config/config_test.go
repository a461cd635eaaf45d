package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestRead_MissingFileUsesDefaults(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "nope", "config.yaml"))

	cfg, err := Read(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestRead_File(t *testing.T) {
	path := writeConfig(t, `
speed: 2
tone:
  frequency: 550
devices:
  haptic: false
gpio:
  enabled: true
  torch_pin: 4
  pulse: 45ms
ui:
  theme: light
`)

	cfg, err := Read(New(path))
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Speed)
	assert.Equal(t, 0.5, cfg.SpeedMin, "unset keys keep their defaults")
	assert.Equal(t, 550.0, cfg.Tone.Frequency)
	assert.Equal(t, 0.5, cfg.Tone.Volume)
	assert.False(t, cfg.Devices.Haptic)
	assert.True(t, cfg.Devices.Sound)
	assert.True(t, cfg.GPIO.Enabled)
	assert.Equal(t, 4, cfg.GPIO.TorchPin)
	assert.Equal(t, 27, cfg.GPIO.VibrationPin)
	assert.Equal(t, 45*time.Millisecond, cfg.GPIO.Pulse)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
}

func TestRead_EnvOverrides(t *testing.T) {
	t.Setenv("DIT_SPEED", "2.5")
	t.Setenv("DIT_TONE_FREQUENCY", "900")
	path := writeConfig(t, "speed: 1.5\n")

	cfg, err := Read(New(path))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, 900.0, cfg.Tone.Frequency)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative min", "speed_min: -1\n", "speed_min"},
		{"max below min", "speed_min: 2\nspeed_max: 1\n", "speed_max"},
		{"volume", "tone:\n  volume: 3\n", "tone.volume"},
		{"theme", "ui:\n  theme: neon\n", "ui.theme"},
		{"log level", "log:\n  level: loud\n", "log.level"},
		{"broken yaml", "speed: [\n", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(New(writeConfig(t, tt.yaml)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dit", "config.yaml")
	cfg := DefaultConfig()
	cfg.Speed = 1.25
	cfg.UI.Theme = ThemeLight

	require.NoError(t, Save(path, cfg))

	loaded, err := Read(New(path))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "dit"), Dir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "dit", "config.yaml"), Path())
}

func TestWatch_Reloads(t *testing.T) {
	path := writeConfig(t, "speed: 1\n")
	v := New(path)
	_, err := Read(v)
	require.NoError(t, err)

	changes := make(chan *Config, 4)
	Watch(v, func(cfg *Config) { changes <- cfg })

	require.NoError(t, os.WriteFile(path, []byte("speed: 2\n"), 0644))

	select {
	case cfg := <-changes:
		assert.Equal(t, 2.0, cfg.Speed)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
}
