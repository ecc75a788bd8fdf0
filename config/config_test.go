package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LVLALG_REPORT_DIR", "/tmp/reports")
	t.Setenv("LVLALG_REPORT_FORMAT", "json")
	t.Setenv("LVLALG_REPORT_COMPRESS", "true")
	t.Setenv("LVLALG_PRECISION", "3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.ReportDir)
	assert.Equal(t, "json", cfg.ReportFormat)
	assert.True(t, cfg.ReportCompress)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BadEnvironmentValue(t *testing.T) {
	t.Setenv("LVLALG_PRECISION", "many")
	_, err := config.Load()
	assert.Error(t, err)
	assert.Equal(t, config.Default(), config.LoadOrDefault())
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlalg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report_dir: out\nreport_format: toml\nlog_level: debug\n"), 0o600))
	t.Setenv("LVLALG_LOG_LEVEL", "warn")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.ReportDir)
	assert.Equal(t, "toml", cfg.ReportFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, -1, cfg.Precision)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: [1"), 0o600))
	_, err = config.LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"format", func(c *config.Config) { c.ReportFormat = "xml" }},
		{"level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"precision low", func(c *config.Config) { c.Precision = -2 }},
		{"precision high", func(c *config.Config) { c.Precision = 40 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestDerived(t *testing.T) {
	cfg := config.Default()
	cfg.LogDev = true
	cfg.Precision = 2
	assert.True(t, cfg.Logging().Development)
	assert.Equal(t, "info", cfg.Logging().Level)
	assert.Equal(t, "1.50", cfg.Formatter().Float(1.5))
}
