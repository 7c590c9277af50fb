package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions = 0o755

	// JournalFileName is the distraction log inside the data directory.
	JournalFileName = "distractions.json"
	// ConfigFileName is the optional TOML settings file.
	ConfigFileName = "config.toml"
)

// Manager centralizes where workwise data lives on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.workwise (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all workwise files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// JournalPath resolves the absolute path of the distraction log.
// The file may not exist yet.
func (m *Manager) JournalPath() string {
	return filepath.Join(m.basePath, JournalFileName)
}

// ConfigPath resolves the absolute path of the settings file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, ConfigFileName)
}

// EnsureBaseDir creates the data directory if needed and returns its path.
func (m *Manager) EnsureBaseDir() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return m.basePath, nil
}
