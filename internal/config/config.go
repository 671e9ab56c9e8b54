// Package config loads run configuration from TOML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// EnvAssumeDefaults forces every prompt to its default answer when set truthy.
const EnvAssumeDefaults = "ZSHC_ASSUME_DEFAULTS"

// DependencyPolicy controls what happens when a step's dependency is missing.
type DependencyPolicy string

const (
	// DependencySkip records DependencyNotMet and continues the run.
	DependencySkip DependencyPolicy = "skip"
	// DependencyAbort stops the run.
	DependencyAbort DependencyPolicy = "abort"
)

// Config holds run-wide settings.
type Config struct {
	AssumeDefaults   bool
	CommandTimeout   time.Duration
	DownloadTimeout  time.Duration
	DependencyPolicy DependencyPolicy
	CustomDir        string
}

// fileConfig mirrors the TOML schema. Durations are strings so the file
// reads naturally ("10m", "90s").
type fileConfig struct {
	AssumeDefaults   *bool  `toml:"assume_defaults"`
	CommandTimeout   string `toml:"command_timeout"`
	DownloadTimeout  string `toml:"download_timeout"`
	DependencyPolicy string `toml:"dependency_policy"`
	CustomDir        string `toml:"custom_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CommandTimeout:   10 * time.Minute,
		DownloadTimeout:  2 * time.Minute,
		DependencyPolicy: DependencySkip,
	}
}

// DefaultPath returns the config file location under the XDG config dir.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "zshc", "config.toml")
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf(messages.ConfigLoadFmt, path, err)
	}
	if err == nil {
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf(messages.ConfigLoadFmt, path, err)
		}
		if err := cfg.apply(fc); err != nil {
			return Config{}, err
		}
	}

	if v, ok := os.LookupEnv(EnvAssumeDefaults); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AssumeDefaults = b
		}
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if fc.AssumeDefaults != nil {
		c.AssumeDefaults = *fc.AssumeDefaults
	}
	if fc.CommandTimeout != "" {
		d, err := time.ParseDuration(fc.CommandTimeout)
		if err != nil {
			return fmt.Errorf(messages.ConfigBadDurationFmt, fc.CommandTimeout, "command_timeout")
		}
		c.CommandTimeout = d
	}
	if fc.DownloadTimeout != "" {
		d, err := time.ParseDuration(fc.DownloadTimeout)
		if err != nil {
			return fmt.Errorf(messages.ConfigBadDurationFmt, fc.DownloadTimeout, "download_timeout")
		}
		c.DownloadTimeout = d
	}
	if fc.DependencyPolicy != "" {
		switch DependencyPolicy(fc.DependencyPolicy) {
		case DependencySkip, DependencyAbort:
			c.DependencyPolicy = DependencyPolicy(fc.DependencyPolicy)
		default:
			return fmt.Errorf(messages.ConfigBadPolicyFmt, fc.DependencyPolicy)
		}
	}
	if fc.CustomDir != "" {
		c.CustomDir = fc.CustomDir
	}
	return nil
}
