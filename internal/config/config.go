// Package config loads quiz settings from an optional config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"studyquiz/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. STUDYQUIZ_UI.
const EnvPrefix = "STUDYQUIZ"

// UI mode names accepted by the play command.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Config holds user settings for a quiz run.
type Config struct {
	Bank    string    `mapstructure:"bank"`
	UI      string    `mapstructure:"ui"`
	Seed    int64     `mapstructure:"seed"`
	NoColor bool      `mapstructure:"no_color"`
	Report  string    `mapstructure:"report"`
	Log     LogConfig `mapstructure:"log"`

	// Path of the file the settings came from, empty when none was found.
	Source string `mapstructure:"-"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// LoggingOptions converts the log section for the logging package.
func (cfg Config) LoggingOptions() logging.Options {
	return logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		UI: UIAuto,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Default()
	v.SetDefault("bank", defaults.Bank)
	v.SetDefault("ui", defaults.UI)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("report", defaults.Report)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads settings from path, or from the nearest .studyquiz/config.yml
// above startDir when path is empty. A missing discovered file is not an
// error; defaults and the environment still apply.
func Load(path, startDir string) (Config, error) {
	v := newViper()
	v.SetConfigType("yaml")

	source := strings.TrimSpace(path)
	if source == "" {
		found, err := FindConfigPath(startDir)
		switch {
		case err == nil:
			source = found
		case errors.Is(err, ErrConfigNotFound):
		default:
			return Config{}, err
		}
	}
	if source != "" {
		v.SetConfigFile(source)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", source, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = source
	Normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims values and resolves file paths against the config location.
func Normalize(cfg *Config) {
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.Bank = strings.TrimSpace(cfg.Bank)
	cfg.Report = strings.TrimSpace(cfg.Report)
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Source == "" {
		return
	}
	base := BaseDirFromConfigPath(cfg.Source)
	if cfg.Bank != "" && !filepath.IsAbs(cfg.Bank) {
		cfg.Bank = filepath.Join(base, cfg.Bank)
	}
	if cfg.Report != "" && !filepath.IsAbs(cfg.Report) {
		cfg.Report = filepath.Join(base, cfg.Report)
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(base, cfg.Log.File)
	}
}

// Validate rejects settings the CLI cannot act on.
func (cfg Config) Validate() error {
	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		return fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", cfg.UI, UIAuto, UILive, UIPlain)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}
