package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faizmokh/workwise/internal/session"
)

func TestTimerCommandCompletes(t *testing.T) {
	mgr := newTempManager(t)

	prev := tickInterval
	tickInterval = time.Microsecond
	t.Cleanup(func() { tickInterval = prev })

	out := executeCommand(t, newTimerCommand(context.Background(), mgr), "--minutes", "25")
	assertContains(t, out, "Session started: 25 minutes")
	assertContains(t, out, "\r00:00")
	assertContains(t, out, "Session Completed!")
}

func TestTimerCommandStopsWhenCancelled(t *testing.T) {
	mgr := newTempManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := executeCommand(t, newTimerCommand(ctx, mgr), "--minutes", "50")
	assertContains(t, out, "Session stopped.")
	assertContains(t, out, "\r00:00")
	assertNotContains(t, out, "Session Completed!")
}

func TestTimerCommandRejectsOtherDurations(t *testing.T) {
	mgr := newTempManager(t)

	err := executeCommandErr(t, newTimerCommand(context.Background(), mgr), "--minutes", "15")
	if !errors.Is(err, session.ErrInvalidDuration) {
		t.Fatalf("error = %v, want ErrInvalidDuration", err)
	}
}
