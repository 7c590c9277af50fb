package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCompletes(t *testing.T) {
	s := New()
	var last Event
	progress := 0

	err := Run(context.Background(), s, 25, time.Microsecond, func(e Event) {
		if e.Type == EventProgress {
			progress++
		}
		last = e
	})
	require.NoError(t, err)
	require.Equal(t, 25*60, progress)
	require.Equal(t, EventCompleted, last.Type)
	require.Equal(t, StateCompleted, s.Timer().State())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())

	err := Run(ctx, s, 50, time.Microsecond, func(e Event) {
		if e.Remaining == 50*60-3 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateIdle, s.Timer().State())
	require.Equal(t, 0, s.Timer().Remaining())
}

func TestRunTicksImmediatelyOnStart(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	var first Event

	start := time.Now()
	err := Run(ctx, s, 25, time.Hour, func(e Event) {
		first = e
		cancel()
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Minute)
	require.Equal(t, EventProgress, first.Type)
	require.Equal(t, 25*60-1, first.Remaining)
}

func TestRunReturnsEarlyOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	err := Run(ctx, s, 25, time.Microsecond, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateIdle, s.Timer().State())
}

func TestRunRejectsBadDuration(t *testing.T) {
	err := Run(context.Background(), New(), 10, time.Millisecond, nil)
	require.ErrorIs(t, err, ErrInvalidDuration)
}
