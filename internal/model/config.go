package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store driver names accepted in StoreConfig.Driver.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	ViewMode string `mapstructure:"view_mode" yaml:"view_mode"`
	PageSize int    `mapstructure:"page_size" yaml:"page_size"`
}

// StoreConfig selects the in-memory backend for each session.
type StoreConfig struct {
	// Driver is "memory" or "sqlite". The sqlite driver always runs on a
	// private in-memory database.
	Driver string `mapstructure:"driver" yaml:"driver"`
}

// SeedConfig points at an optional replacement for the built-in dataset.
type SeedConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls where the zerolog output goes.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Seed    SeedConfig    `mapstructure:"seed" yaml:"seed"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// ConfigDir returns ~/.config/notifdash, or the working directory if the
// home directory cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "notifdash")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/notifdash/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			ViewMode: string(ViewModeList),
			PageSize: 6,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		Log: LogConfig{
			File:  filepath.Join(ConfigDir(), "notifdash.log"),
			Level: "info",
		},
	}
}

// SetDefaults registers every config key's default on v so that missing
// keys (and unset flags bound to v) resolve to sensible values.
func SetDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("display.view_mode", d.Display.ViewMode)
	v.SetDefault("display.page_size", d.Display.PageSize)
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("seed.path", d.Seed.Path)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	return LoadConfigWith(v, path)
}

// LoadConfigWith is LoadConfig on a caller-supplied Viper instance, so that
// command-line flags already bound to v take precedence over the file.
func LoadConfigWith(v *viper.Viper, path string) (*AppConfig, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	SetDefaults(v)

	// A missing file is not an error: defaults and bound flags still apply.
	if err := v.ReadInConfig(); err != nil && !isConfigMissing(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func isConfigMissing(err error) bool {
	if _, ok := err.(*os.PathError); ok {
		return true
	}
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}

// Validate checks the enum-valued settings and normalizes the page size.
func (c *AppConfig) Validate() error {
	if _, err := ParseViewMode(c.Display.ViewMode); err != nil {
		return fmt.Errorf("display.view_mode: %w", err)
	}
	if c.Display.PageSize <= 0 {
		c.Display.PageSize = 6
	}
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverSQLite:
	default:
		return fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver)
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("store", cfg.Store)
	v.Set("seed", cfg.Seed)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
