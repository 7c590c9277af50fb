package distraction

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TodayMode selects the lower bound used by the Today window.
type TodayMode uint8

const (
	// TodayMidnight counts entries since the start of the local day.
	TodayMidnight TodayMode = iota
	// TodayNow counts entries at or after the current instant, which is
	// nearly always none. Kept for parity with journals generated by the
	// old desktop app.
	TodayNow
)

func (m TodayMode) String() string {
	if m == TodayNow {
		return "now"
	}
	return "midnight"
}

// ParseTodayMode accepts "midnight" (or empty) and "now".
func ParseTodayMode(input string) (TodayMode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "midnight":
		return TodayMidnight, nil
	case "now":
		return TodayNow, nil
	default:
		return TodayMidnight, &ValidationError{
			Field:   "today_window",
			Message: fmt.Sprintf("%q (expected midnight or now)", input),
		}
	}
}

// Window is a trailing report range.
type Window struct {
	Label string
	Days  int
}

var (
	WindowToday  = Window{Label: "Today", Days: 0}
	Window7Days  = Window{Label: "7 Days", Days: 7}
	Window15Days = Window{Label: "15 Days", Days: 15}
	Window30Days = Window{Label: "30 Days", Days: 30}
)

// Windows lists the selectable report windows in display order.
func Windows() []Window {
	return []Window{WindowToday, Window7Days, Window15Days, Window30Days}
}

func (w Window) String() string {
	return w.Label
}

// Start returns the inclusive lower bound of the window relative to now.
func (w Window) Start(now time.Time, mode TodayMode) time.Time {
	if w.Days > 0 {
		return now.Add(-time.Duration(w.Days) * 24 * time.Hour)
	}
	if mode == TodayNow {
		return now
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseWindow accepts the window labels ("7 Days"), "today", and short
// forms such as "7d" or "15".
func ParseWindow(input string) (Window, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" || value == "today" {
		return WindowToday, nil
	}

	value = strings.TrimSpace(strings.TrimSuffix(value, "days"))
	value = strings.TrimSpace(strings.TrimSuffix(value, "d"))
	days, err := strconv.Atoi(value)
	if err == nil {
		for _, w := range Windows() {
			if w.Days == days {
				return w, nil
			}
		}
	}

	return Window{}, &ValidationError{
		Field:   "window",
		Message: fmt.Sprintf("%q (expected Today, 7 Days, 15 Days or 30 Days)", input),
	}
}
