package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kdouveno/selescript/internal/logging"
)

// AppName names the configuration and data directories.
const AppName = "selescript"

// Config holds all settings.
type Config struct {
	// ScriptsDir is the directory holding the user scripts.
	ScriptsDir string `toml:"scripts_dir"`

	// Extension is the script file extension, including the dot.
	Extension string `toml:"extension"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Editor is the command used to open scripts for editing.
	Editor string `toml:"editor"`

	// Color enables coloured terminal output.
	Color bool `toml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScriptsDir: filepath.Join(DefaultDir(), "scripts"),
		Extension:  ".lua",
		LogLevel:   "warn",
		Editor:     "vi",
		Color:      true,
	}
}

// DefaultDir returns the selescript configuration directory.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName)
	}
	return "." + AppName
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c Config) Level() logging.Level {
	level, ok := logging.ParseLevel(c.LogLevel)
	if !ok {
		return logging.LevelWarn
	}
	return level
}

// Validate checks the settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ScriptsDir) == "" {
		return &ValidationError{Key: "scripts_dir", Value: c.ScriptsDir, Message: "must not be empty"}
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 || strings.ContainsAny(c.Extension, `/\`) {
		return &ValidationError{Key: "extension", Value: c.Extension, Message: "must look like .lua"}
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return &ValidationError{Key: "log_level", Value: c.LogLevel, Message: "must be debug, info, warn or error"}
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
