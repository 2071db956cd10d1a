// Package config provides configuration types and defaults for snapedit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/snapedit/internal/clipboard"
	"github.com/zjrosen/snapedit/internal/log"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration options for snapedit.
type Config struct {
	History   HistoryConfig   `mapstructure:"history"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Debug     bool            `mapstructure:"debug"`
	LogPath   string          `mapstructure:"log_path"`
	LogLevel  string          `mapstructure:"log_level"` // debug (default), info, warn, error
}

// HistoryConfig controls the undo history.
type HistoryConfig struct {
	Limit int `mapstructure:"limit"` // Max undoable entries; 0 = unlimited
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `mapstructure:"backend"` // "memory" (default) or "system"
}

// SnapshotConfig controls what a snapshot captures.
type SnapshotConfig struct {
	// IncludeClipboard makes undo also revert the clipboard.
	IncludeClipboard bool `mapstructure:"include_clipboard"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		History: HistoryConfig{
			Limit: 0,
		},
		Clipboard: ClipboardConfig{
			Backend: clipboard.BackendMemory,
		},
		Snapshot: SnapshotConfig{
			IncludeClipboard: false,
		},
		Debug:    false,
		LogPath:  "debug.log",
		LogLevel: "debug",
	}
}

// Validate checks the configuration for out-of-range values.
func Validate(cfg Config) error {
	if cfg.History.Limit < 0 {
		return fmt.Errorf("%w: history.limit must be >= 0, got %d", ErrInvalidConfig, cfg.History.Limit)
	}
	switch clipboard.NormalizeBackend(cfg.Clipboard.Backend) {
	case clipboard.BackendMemory, clipboard.BackendSystem:
	default:
		return fmt.Errorf("%w: clipboard.backend must be %q or %q, got %q",
			ErrInvalidConfig, clipboard.BackendMemory, clipboard.BackendSystem, cfg.Clipboard.Backend)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q is not one of debug, info, warn, error", ErrInvalidConfig, cfg.LogLevel)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# snapedit configuration

history:
  limit: 0                   # Max undoable operations; 0 keeps everything

clipboard:
  backend: memory            # "memory" (in-process) or "system" (OS clipboard)

snapshot:
  include_clipboard: false   # When true, undo also reverts the clipboard

# Debug logging (also enabled by --debug or SNAPEDIT_DEBUG=1)
debug: false
log_path: debug.log
log_level: debug             # debug, info, warn, error
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
