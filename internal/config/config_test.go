package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 25, cfg.SessionMinutes)
	require.Equal(t, 100, cfg.HistoryLimit)
	require.Equal(t, distraction.TodayMidnight, cfg.TodayMode())
}

func TestLoadOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
session_minutes = 50
history_limit = 20
today_window = "now"
debug_log = "~/workwise.log"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.SessionMinutes)
	require.Equal(t, 20, cfg.HistoryLimit)
	require.Equal(t, distraction.TodayNow, cfg.TodayMode())
	require.Equal(t, filepath.Join(home, "workwise.log"), cfg.DebugLog)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "history_limit = 5\n"))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.HistoryLimit)
	require.Equal(t, session.ShortMinutes, cfg.SessionMinutes)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "session_minutes = 30\n"))
	require.True(t, errors.Is(err, session.ErrInvalidDuration))

	_, err = Load(writeConfig(t, "history_limit = 0\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `today_window = "sunrise"`))
	require.Error(t, err)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	_, err := Load(writeConfig(t, "session_minutes = = 25"))
	require.Error(t, err)
}
