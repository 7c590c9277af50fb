package session

import (
	"context"
	"time"
)

// Run drives a session in the foreground. The first tick happens as soon
// as the session starts, then one per interval on the caller's goroutine
// until the countdown completes or ctx is cancelled. Cancellation stops the
// session and returns ctx.Err().
func Run(ctx context.Context, s *Session, minutes int, interval time.Duration, onEvent func(Event)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if interval <= 0 {
		interval = time.Second
	}

	handle, started, err := s.Start(minutes)
	if err != nil {
		return err
	}
	if !started {
		return nil
	}

	tick := func() bool {
		event := s.Tick(handle)
		if onEvent != nil && event.Type != EventIgnored {
			onEvent(event)
		}
		return event.Type == EventProgress
	}
	if !tick() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return nil
			}
		}
	}
}
