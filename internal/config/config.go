package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// PathPlaceholder marks the command argument replaced by the edited file's path.
const PathPlaceholder = "{path}"

// DefaultCommand is the formatter argv used when none is configured.
// The path is appended, giving "just fix <path>".
var DefaultCommand = []string{"just", "fix"}

// ConfigEnvVar overrides the global config file location.
const ConfigEnvVar = "FIXHOOK_CONFIG"

// FormatterConfig configures the command run on edited files.
type FormatterConfig struct {
	Command []string      `toml:"command"` // argv; {path} marks where the path goes, else it is appended
	Timeout time.Duration `toml:"timeout"` // zero means no deadline
	Dir     string        `toml:"dir"`     // working directory; empty means the current one
}

// Config holds the fixhook configuration
type Config struct {
	Formatter FormatterConfig `toml:"formatter"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Formatter: FormatterConfig{
			Command: append([]string(nil), DefaultCommand...),
		},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the global config file path:
// $FIXHOOK_CONFIG if set, else ~/.config/fixhook/config.toml.
func Path() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fixhook", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, applying defaults and validation.
// A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Dir must be absolute or start with ~ in the global file
	if err := ValidatePath(cfg.Formatter.Dir, "formatter.dir"); err != nil {
		return Default(), err
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// normalize fills defaults, expands ~ and validates.
func (c *Config) normalize() error {
	if len(c.Formatter.Command) == 0 {
		c.Formatter.Command = append([]string(nil), DefaultCommand...)
	}
	if c.Formatter.Dir != "" {
		expanded, err := expandPath(c.Formatter.Dir)
		if err != nil {
			return fmt.Errorf("expand formatter.dir: %w", err)
		}
		c.Formatter.Dir = expanded
	}
	return c.Validate()
}

const defaultConfig = `# fixhook configuration
#
# fixhook runs after every edit, write or patch tool call and formats the
# touched file. Failures are ignored.

[formatter]
# Command run on the edited file, as an argument list (no shell involved).
# The path is appended, or placed wherever "{path}" appears.
command = ["just", "fix"]
# command = ["just", "fix", "{path}", "--unsafe"]

# Optional deadline for the command. Default: none.
# timeout = "30s"

# Optional working directory. Must be absolute or start with ~.
# Default: the directory the host runs fixhook in.
# dir = "~/src/project"

# A project can override these settings in .fixhook.toml at its root:
#
#   [formatter]
#   command = ["treefmt"]
#   timeout = "10s"
`

// Init creates a default config file at Path().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}
