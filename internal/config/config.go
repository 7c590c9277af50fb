package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/session"
)

// Config holds user settings read from config.toml.
type Config struct {
	// SessionMinutes is the default countdown length (25 or 50).
	SessionMinutes int `toml:"session_minutes"`

	// HistoryLimit caps how many entries the history view lists.
	HistoryLimit int `toml:"history_limit"`

	// TodayWindow is "midnight" or "now"; see distraction.TodayMode.
	TodayWindow string `toml:"today_window"`

	// DebugLog, when set, receives the TUI's log output.
	DebugLog string `toml:"debug_log"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		SessionMinutes: session.ShortMinutes,
		HistoryLimit:   distraction.DefaultRecentLimit,
		TodayWindow:    distraction.TodayMidnight.String(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DebugLog = expandHome(strings.TrimSpace(cfg.DebugLog))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !session.ValidMinutes(c.SessionMinutes) {
		return fmt.Errorf("session_minutes = %d: %w", c.SessionMinutes, session.ErrInvalidDuration)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if _, err := distraction.ParseTodayMode(c.TodayWindow); err != nil {
		return err
	}
	return nil
}

// TodayMode returns the parsed today_window setting.
func (c *Config) TodayMode() distraction.TodayMode {
	mode, _ := distraction.ParseTodayMode(c.TodayWindow)
	return mode
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
