package distraction

import (
	"context"
	"time"
)

// Report holds per-category counts for a window.
type Report struct {
	Window  Window
	Since   time.Time
	Counts  map[Category]int
	Total   int
	Skipped int
	Status  Status
}

// Count returns the tally for c, zero if unseen.
func (r Report) Count(c Category) int {
	return r.Counts[c]
}

// Max returns the largest category count.
func (r Report) Max() int {
	highest := 0
	for _, c := range Categories() {
		if r.Counts[c] > highest {
			highest = r.Counts[c]
		}
	}
	return highest
}

// Aggregate counts entries at or after the window's lower bound. Entries
// with unparseable timestamps or unknown categories are skipped, as are
// array elements that do not decode as entries. A corrupt
// journal is reported as a *ReadError alongside a zeroed report.
func (l *Log) Aggregate(ctx context.Context, window Window) (Report, error) {
	now := l.now()
	report := Report{
		Window: window,
		Since:  window.Start(now, l.todayMode),
		Counts: make(map[Category]int, len(Categories())),
	}
	for _, c := range Categories() {
		report.Counts[c] = 0
	}

	snapshot, err := l.Load(ctx)
	if err != nil {
		return report, err
	}
	report.Status = snapshot.Status
	if snapshot.Status == StatusCorrupt {
		return report, snapshot.Err
	}
	report.Skipped = snapshot.Skipped

	for _, entry := range snapshot.Entries {
		when, err := entry.Time()
		if err != nil {
			report.Skipped++
			continue
		}
		if when.Before(report.Since) {
			continue
		}
		if !entry.Category.Valid() {
			report.Skipped++
			continue
		}
		report.Counts[entry.Category]++
		report.Total++
	}
	return report, nil
}
