package session

import (
	"errors"
	"fmt"
)

// Durations a session may be started with, in minutes.
const (
	ShortMinutes = 25
	LongMinutes  = 50
)

// ErrInvalidDuration is returned by Start for durations other than 25 or 50.
var ErrInvalidDuration = errors.New("session duration must be 25 or 50 minutes")

// ValidMinutes reports whether minutes is a selectable session length.
func ValidMinutes(minutes int) bool {
	return minutes == ShortMinutes || minutes == LongMinutes
}

// Handle identifies one run of the timer. Ticks carry the handle they were
// scheduled with; Stop and Start invalidate older handles, which is how a
// pending tick gets cancelled.
type Handle struct {
	id uint64
}

// Valid reports whether the handle came from a successful Start.
func (h Handle) Valid() bool {
	return h.id != 0
}

// Timer is a countdown that advances once per Tick. It holds no goroutines;
// whoever owns it schedules the ticks.
type Timer struct {
	state      State
	minutes    int
	remaining  int
	generation uint64
}

// NewTimer returns an idle timer.
func NewTimer() *Timer {
	return &Timer{state: StateIdle}
}

// Start begins a countdown. It is a no-op returning false while a countdown
// is already running, so ticking is never scheduled twice.
func (t *Timer) Start(minutes int) (Handle, bool, error) {
	if t.state == StateRunning {
		return Handle{}, false, nil
	}
	if !ValidMinutes(minutes) {
		return Handle{}, false, fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}

	t.generation++
	t.state = StateRunning
	t.minutes = minutes
	t.remaining = minutes * 60
	return Handle{id: t.generation}, true, nil
}

// Tick advances the countdown by one second. Ticks from a cancelled or
// superseded run are ignored.
func (t *Timer) Tick(h Handle) Event {
	if t.state != StateRunning || h.id != t.generation {
		return Event{Type: EventIgnored, Remaining: t.remaining, Progress: t.Progress()}
	}

	if t.remaining > 0 {
		t.remaining--
		return Event{Type: EventProgress, Remaining: t.remaining, Progress: t.Progress()}
	}

	t.state = StateCompleted
	t.generation++
	return Event{Type: EventCompleted, Remaining: 0, Progress: 1}
}

// Stop cancels any pending tick and resets the display to zero. Safe to
// call in any state.
func (t *Timer) Stop() {
	t.generation++
	t.state = StateIdle
	t.remaining = 0
}

// State returns the timer mode.
func (t *Timer) State() State {
	return t.state
}

// Running reports whether a countdown is in progress.
func (t *Timer) Running() bool {
	return t.state == StateRunning
}

// Minutes returns the duration of the current or last run.
func (t *Timer) Minutes() int {
	return t.minutes
}

// Remaining returns the seconds left on the clock.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Progress returns how much of the run has elapsed, from 0 to 1.
func (t *Timer) Progress() float64 {
	switch t.state {
	case StateCompleted:
		return 1
	case StateIdle:
		return 0
	}
	total := t.minutes * 60
	if total <= 0 {
		return 0
	}
	return float64(total-t.remaining) / float64(total)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
