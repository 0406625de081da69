package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project config file, read from the
// directory fixhook runs in.
const LocalConfigFileName = ".fixhook.toml"

// LocalFormatter holds project overrides for the formatter.
// Zero values and nil pointers mean "not set" (inherit from global).
type LocalFormatter struct {
	Command []string       `toml:"command"`
	Timeout *time.Duration `toml:"timeout"`
	Dir     string         `toml:"dir"` // relative paths resolve against the project directory
}

// LocalConfig holds per-project configuration overrides from .fixhook.toml.
type LocalConfig struct {
	Formatter LocalFormatter `toml:"formatter"`
}

// LoadLocal reads a per-project .fixhook.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if d := local.Formatter.Dir; d != "" && d[0] != '~' && !filepath.IsAbs(d) {
		local.Formatter.Dir = filepath.Join(dir, d)
	}
	if t := local.Formatter.Timeout; t != nil && *t < 0 {
		return nil, fmt.Errorf("invalid formatter.timeout %s in %s: must not be negative", *t, configFile)
	}

	return &local, nil
}

// Resolve returns the effective config for dir: the global config with
// dir's .fixhook.toml merged on top.
func Resolve(dir string) (Config, error) {
	global, err := Load()
	if err != nil {
		return global, err
	}

	local, err := LoadLocal(dir)
	if err != nil {
		return global, err
	}

	merged := MergeLocal(global, local)
	if err := merged.normalize(); err != nil {
		return global, fmt.Errorf("%s: %w", filepath.Join(dir, LocalConfigFileName), err)
	}
	return merged, nil
}
