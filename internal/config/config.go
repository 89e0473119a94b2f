// Package config provides configuration file parsing for apktool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrLoadConfig indicates a failure to read or parse the YAML configuration.
var ErrLoadConfig = errors.New("config load failed")

// Config represents the apktool YAML configuration file. Every field has
// a working default; the file and all keys are optional.
type Config struct {
	// BackupRoot is the directory holding one subdirectory per snapshot.
	BackupRoot string `mapstructure:"backup_root"`
	// ADBPath points at the adb binary; empty resolves "adb" on PATH.
	ADBPath string `mapstructure:"adb_path"`
	// DBPath is the backup history database location.
	DBPath string `mapstructure:"db_path"`
	// Serial pins all adb invocations to one device.
	Serial string `mapstructure:"serial"`
}

// Dir returns the apktool config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/apktool if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "apktool"), nil
}

// DefaultDBPath returns the default history database location,
// creating ~/.apktool on the way.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".apktool")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create apktool directory: %w", err)
	}

	return filepath.Join(dir, "apktool.db"), nil
}

// Load reads the configuration using Viper. With an explicit path the
// file must exist and parse; with an empty path the default location
// ({config.Dir}/config.yaml) is tried and a missing file just yields the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("apktool")
	v.AutomaticEnv()

	v.SetDefault("backup_root", "backup")
	v.SetDefault("adb_path", "")
	v.SetDefault("db_path", "")
	v.SetDefault("serial", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoadConfig, path, err)
		}
	} else {
		dir, err := Dir()
		if err == nil {
			v.AddConfigPath(dir)
			v.SetConfigName("config")
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, fmt.Errorf("%w: read default config: %v", ErrLoadConfig, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %v", ErrLoadConfig, err)
	}

	return &cfg, nil
}
