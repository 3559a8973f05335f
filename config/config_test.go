package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/engine"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, time.Second/60, cfg.TickRate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs/skyport.log", cfg.Log.File)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1000.0, cfg.Fuel.Capacity)
	assert.Equal(t, 0.2, cfg.Fuel.LowThreshold)
	assert.Equal(t, time.Second, cfg.Docking.ScanInterval)
	assert.Equal(t, 50.0, cfg.Docking.Range)
	assert.Empty(t, cfg.Disabled)

	assert.Equal(t, engine.DefaultTuning(), cfg.Tuning())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyport.yaml")
	doc := `
tickRate: 10ms
log:
  level: debug
fuel:
  capacity: 500
docking:
  scanInterval: 250ms
  range: 80
autopilot:
  yawGain: 50
disabled: [input, docking]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.TickRate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 500.0, cfg.Fuel.Capacity)
	assert.Equal(t, 0.2, cfg.Fuel.LowThreshold, "unset keys keep defaults")
	assert.Equal(t, []string{"input", "docking"}, cfg.Disabled)

	tun := cfg.Tuning()
	assert.Equal(t, 250*time.Millisecond, tun.DockScanInterval)
	assert.Equal(t, 80.0, tun.DockRange)
	assert.Equal(t, 50.0, tun.AutopilotYawGain)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SKYPORT_LOG_LEVEL", "warn")
	t.Setenv("SKYPORT_DOCKING_RANGE", "75")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 75.0, cfg.Docking.Range)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/skyport.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fuel:\n  lowThreshold: 2\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowThreshold")
}
