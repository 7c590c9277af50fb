package session

import (
	"github.com/faizmokh/workwise/internal/distraction"
)

// Session pairs a Timer with the distractions noted while it runs. The
// notes are handed back when the countdown completes.
type Session struct {
	timer *Timer
	notes []distraction.Entry
}

// New returns an idle session.
func New() *Session {
	return &Session{timer: NewTimer()}
}

// Timer exposes the underlying countdown for display.
func (s *Session) Timer() *Timer {
	return s.timer
}

// Start begins a countdown; see Timer.Start.
func (s *Session) Start(minutes int) (Handle, bool, error) {
	return s.timer.Start(minutes)
}

// Stop cancels the countdown. Buffered notes survive until the next
// completion.
func (s *Session) Stop() {
	s.timer.Stop()
}

// Record buffers an entry for the end-of-session summary.
func (s *Session) Record(entry distraction.Entry) {
	s.notes = append(s.notes, entry)
}

// Notes returns a copy of the buffered entries.
func (s *Session) Notes() []distraction.Entry {
	return append([]distraction.Entry(nil), s.notes...)
}

// Tick advances the timer. A completion event carries the buffered notes
// and empties the buffer.
func (s *Session) Tick(h Handle) Event {
	event := s.timer.Tick(h)
	if event.Type == EventCompleted {
		event.Notes = s.notes
		s.notes = nil
	}
	return event
}
