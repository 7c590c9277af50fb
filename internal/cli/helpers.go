package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/faizmokh/workwise/internal/config"
	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/files"
)

const barWidth = 30

// openJournal loads settings and returns the journal they configure.
func openJournal(manager *files.Manager) (*distraction.Log, *config.Config, error) {
	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return nil, nil, err
	}
	log := distraction.NewLog(manager.JournalPath(), distraction.WithTodayMode(cfg.TodayMode()))
	return log, cfg, nil
}

func printEntries(out io.Writer, entries []distraction.Entry) {
	for _, entry := range entries {
		fmt.Fprintln(out, entry.String())
	}
}

func printReport(out io.Writer, report distraction.Report) {
	fmt.Fprintf(out, "Distraction summary: %s (since %s)\n", report.Window, report.Since.Format("2006-01-02 15:04"))

	highest := report.Max()
	for _, c := range distraction.Categories() {
		count := report.Count(c)
		fmt.Fprintf(out, "%-20s %4d %s\n", c, count, bar(count, highest))
	}
	fmt.Fprintf(out, "%-20s %4d\n", "Total", report.Total)
	if report.Skipped > 0 {
		fmt.Fprintf(out, "(%d unreadable entr%s skipped)\n", report.Skipped, plural(report.Skipped))
	}
}

func bar(count, highest int) string {
	if count <= 0 || highest <= 0 {
		return ""
	}
	width := count * barWidth / highest
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
