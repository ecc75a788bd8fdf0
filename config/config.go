// Package config loads lvlalg settings from an optional YAML file and the
// environment. Environment variables (prefix LVLALG_) override the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvlalg/logging"
	"github.com/katalvlaran/lvlalg/report"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LVLALG"

// MaxPrecision bounds the number of decimals in fixed-precision reports.
const MaxPrecision = 17

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration.
// Variables are LVLALG_REPORT_DIR, LVLALG_REPORT_FORMAT, LVLALG_REPORT_COMPRESS,
// LVLALG_PRECISION, LVLALG_LOG_LEVEL and LVLALG_LOG_DEV. Fields carry no
// envconfig defaults: values absent from the environment keep whatever
// Default or the YAML file put there.
type Config struct {
	ReportDir      string `split_words:"true" yaml:"report_dir"`
	ReportFormat   string `split_words:"true" yaml:"report_format"`
	ReportCompress bool   `split_words:"true" yaml:"report_compress"`
	Precision      int    `yaml:"precision"`
	LogLevel       string `split_words:"true" yaml:"log_level"`
	LogDev         bool   `split_words:"true" yaml:"log_dev"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		ReportDir:    ".",
		ReportFormat: string(report.CSV),
		Precision:    -1,
		LogLevel:     "info",
	}
}

// Load loads configuration from environment variables on top of Default.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads the YAML file at path (skipped when path is empty), then
// applies the environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects unknown report formats and log levels and out-of-range precision.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.ReportFormat); err != nil {
		return fmt.Errorf("%w: report format %q", ErrInvalidConfig, c.ReportFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Precision < -1 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d outside [-1, %d]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}

	return nil
}

// Logging returns the logger configuration described by c.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Development = c.LogDev

	return lc
}

// Formatter returns the report cell formatter for c.Precision.
func (c *Config) Formatter() report.Formatter {
	return report.Formatter{Precision: c.Precision}
}
