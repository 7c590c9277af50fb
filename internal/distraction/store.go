package distraction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

func readJournal(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{Status: StatusMissing}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read journal: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return Snapshot{
			Status: StatusCorrupt,
			Err:    &ReadError{Path: path, Err: err},
		}, nil
	}

	snapshot := Snapshot{Status: StatusOK, records: records}
	for _, record := range records {
		entry, ok := decodeEntry(record)
		if !ok {
			snapshot.Skipped++
			continue
		}
		snapshot.Entries = append(snapshot.Entries, entry)
	}
	return snapshot, nil
}

// decodeEntry reports false for array elements that are not entry objects,
// such as null or an object with a numeric timestamp.
func decodeEntry(record json.RawMessage) (Entry, bool) {
	trimmed := bytes.TrimSpace(record)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// writeJournal replaces the journal with records via a temp file and rename.
// Records are written back as read, so elements that do not decode as
// entries survive a rewrite.
func writeJournal(path string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, "workwise-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
