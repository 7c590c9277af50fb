package distraction

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies where a wandering thought went.
type Category string

const (
	CategoryFuture Category = "Future"
	CategoryPast   Category = "Past"
	CategoryWishes Category = "Wishes/Imagination"
)

// Categories returns the fixed categories in display order.
func Categories() []Category {
	return []Category{CategoryFuture, CategoryPast, CategoryWishes}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFuture, CategoryPast, CategoryWishes:
		return true
	default:
		return false
	}
}

// Next cycles through the categories in display order.
func (c Category) Next() Category {
	all := Categories()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseCategory maps user input onto a Category. Matching is
// case-insensitive; "wishes" and "imagination" select CategoryWishes.
func ParseCategory(input string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "future":
		return CategoryFuture, nil
	case "past":
		return CategoryPast, nil
	case "wishes/imagination", "wishes", "imagination":
		return CategoryWishes, nil
	default:
		return "", &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q (expected Future, Past or Wishes/Imagination)", input),
		}
	}
}

// Entry is one logged distraction. Entries are never mutated once written;
// their identity is their position in the journal.
type Entry struct {
	Timestamp string   `json:"timestamp"`
	Category  Category `json:"category"`
	Note      string   `json:"note"`
}

// Time parses the entry's timestamp.
func (e Entry) Time() (time.Time, error) {
	return parseTimestamp(e.Timestamp)
}

// String renders the entry the way the history view lists it.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s -> %s", e.stamp(), e.Category, e.Note)
}

// stamp trims the timestamp to minute precision.
func (e Entry) stamp() string {
	if len(e.Timestamp) > 16 {
		return e.Timestamp[:16]
	}
	return e.Timestamp
}

const timestampLayout = time.RFC3339

// Offset-less layouts written by older journals; read in local time.
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}
	for _, layout := range localTimestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
