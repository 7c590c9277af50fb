package distraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

// DefaultRecentLimit is how many entries the history view shows.
const DefaultRecentLimit = 100

// Log is the distraction journal backed by a single JSON file. It assumes
// one process owns the file; writes are read-modify-write without locking.
type Log struct {
	path      string
	now       func() time.Time
	todayMode TodayMode
}

// Option customizes a Log.
type Option func(*Log)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		if now != nil {
			l.now = now
		}
	}
}

// WithTodayMode selects how the Today report window is bounded.
func WithTodayMode(mode TodayMode) Option {
	return func(l *Log) {
		l.todayMode = mode
	}
}

// NewLog returns a journal stored at path.
func NewLog(path string, opts ...Option) *Log {
	l := &Log{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the journal file location.
func (l *Log) Path() string {
	return l.path
}

// Append validates and records a distraction, rewriting the whole file.
// A corrupt journal is never overwritten; Append returns its *ReadError.
func (l *Log) Append(ctx context.Context, category Category, note string) (Entry, error) {
	if err := l.check(ctx); err != nil {
		return Entry{}, err
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return Entry{}, ErrEmptyNote
	}
	if !category.Valid() {
		return Entry{}, &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q", category),
		}
	}

	entry := Entry{
		Timestamp: formatTimestamp(l.now()),
		Category:  category,
		Note:      note,
	}

	snapshot, err := readJournal(l.path)
	if err != nil {
		return Entry{}, err
	}
	if snapshot.Status == StatusCorrupt {
		return Entry{}, snapshot.Err
	}

	record, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("encode entry: %w", err)
	}
	records := append(snapshot.records, record)
	if err := writeJournal(l.path, records); err != nil {
		return Entry{}, fmt.Errorf("write journal: %w", err)
	}
	return entry, nil
}

// Load reads the whole journal. Missing and corrupt files are not errors;
// inspect Snapshot.Status to tell them apart.
func (l *Log) Load(ctx context.Context) (Snapshot, error) {
	if err := l.check(ctx); err != nil {
		return Snapshot{}, err
	}
	return readJournal(l.path)
}

// Recent returns the last limit entries in chronological order. A
// non-positive limit means DefaultRecentLimit.
func (l *Log) Recent(ctx context.Context, limit int) (Snapshot, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	snapshot, err := l.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot.Last(limit), nil
}

// Clear deletes the journal file. There is no undo.
func (l *Log) Clear(ctx context.Context) error {
	if err := l.check(ctx); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove journal: %w", err)
	}
	return nil
}

func (l *Log) check(ctx context.Context) error {
	if l == nil || l.path == "" {
		return errors.New("distraction log not initialized with a path")
	}
	if ctx != nil {
		return ctx.Err()
	}
	return nil
}
