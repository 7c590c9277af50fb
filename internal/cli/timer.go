package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/workwise/internal/files"
	"github.com/faizmokh/workwise/internal/session"
)

// tickInterval is shortened by tests.
var tickInterval = time.Second

func newTimerCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var minutesFlag int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a focus session in the foreground.",
		Long:  "timer counts down a 25 or 50 minute session. Ctrl+C stops it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openJournal(manager)
			if err != nil {
				return err
			}

			minutes := minutesFlag
			if minutes == 0 {
				minutes = cfg.SessionMinutes
			}
			if !session.ValidMinutes(minutes) {
				return fmt.Errorf("%w: got %d", session.ErrInvalidDuration, minutes)
			}

			runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session started: %d minutes\n", minutes)
			fmt.Fprint(out, session.FormatClock(minutes*60))

			s := session.New()
			err = session.Run(runCtx, s, minutes, tickInterval, func(event session.Event) {
				switch event.Type {
				case session.EventProgress:
					fmt.Fprintf(out, "\r%s", session.FormatClock(event.Remaining))
				case session.EventCompleted:
					fmt.Fprintln(out, "\nSession Completed!")
				}
			})
			if errors.Is(err, context.Canceled) {
				fmt.Fprintf(out, "\r%s\nSession stopped.\n", session.FormatClock(s.Timer().Remaining()))
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&minutesFlag, "minutes", 0, "Session length, 25 or 50 (default: session_minutes from config)")

	return cmd
}
