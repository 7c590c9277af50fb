package distraction

import "encoding/json"

// Status tells which path a journal read took.
type Status uint8

const (
	// StatusMissing means the journal file does not exist.
	StatusMissing Status = iota
	// StatusOK means the journal parsed.
	StatusOK
	// StatusCorrupt means the file exists but is not valid JSON.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusOK:
		return "ok"
	case StatusCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Snapshot is the outcome of reading the journal. Missing and corrupt
// files both yield no entries; Err holds the swallowed *ReadError for the
// corrupt case.
//
// Skipped counts array elements that were valid JSON but not readable as
// entries. They are left out of Entries and kept in the file on append.
type Snapshot struct {
	Entries []Entry
	Skipped int
	Status  Status
	Err     error

	records []json.RawMessage
}

// Empty reports whether the snapshot holds no entries.
func (s Snapshot) Empty() bool {
	return len(s.Entries) == 0
}

// Last returns the trailing limit entries in insertion order.
func (s Snapshot) Last(limit int) Snapshot {
	if limit >= 0 && len(s.Entries) > limit {
		s.Entries = s.Entries[len(s.Entries)-limit:]
	}
	return s
}
