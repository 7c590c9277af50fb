package session

import "github.com/faizmokh/workwise/internal/distraction"

// State represents the current timer mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// EventType defines what a tick produced.
type EventType string

const (
	// EventIgnored is returned for ticks whose handle was cancelled.
	EventIgnored EventType = "ignored"
	// EventProgress means the countdown advanced and the driver should
	// schedule the next tick.
	EventProgress EventType = "progress"
	// EventCompleted means the countdown reached zero; no more ticks.
	EventCompleted EventType = "completed"
)

// Event reports the outcome of a tick.
type Event struct {
	Type      EventType
	Remaining int
	Progress  float64
	Notes     []distraction.Entry
}
