package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gigurra/dit/cmd/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dit", "config.yaml")

	var out bytes.Buffer
	require.NoError(t, runConfigInit(&ConfigInitParams{}, path, &out))
	assert.Contains(t, out.String(), path)

	cfg, err := config.Read(config.New(path))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestRunConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed: 2\n"), 0644))

	var out bytes.Buffer
	err := runConfigInit(&ConfigInitParams{}, path, &out)
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "speed: 2\n", string(data))

	require.NoError(t, runConfigInit(&ConfigInitParams{Force: true}, path, &out))
	cfg, err := config.Read(config.New(path))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Speed, cfg.Speed)
}

func TestRunConfigShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DIT_SPEED", "2.5")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	require.NoError(t, runConfigShow(&out))
	assert.Contains(t, out.String(), "speed: 2.5")
	assert.Contains(t, out.String(), "frequency: 700")
}
