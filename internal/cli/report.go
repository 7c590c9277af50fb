package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/files"
)

func newReportCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		windowFlag string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Count distractions per category over a time window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := distraction.ParseWindow(windowFlag)
			if err != nil {
				return err
			}

			journal, _, err := openJournal(manager)
			if err != nil {
				return err
			}

			report, err := journal.Aggregate(ctx, window)
			if err != nil {
				var readErr *distraction.ReadError
				if errors.As(err, &readErr) {
					return fmt.Errorf("unable to read JSON: %w", err)
				}
				return err
			}

			if outputJSON {
				return printReportJSON(cmd, report)
			}
			if report.Status == distraction.StatusMissing {
				fmt.Fprintln(cmd.OutOrStdout(), "No distractions to report.")
				return nil
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "Today", "Today, 7 Days, 15 Days or 30 Days (short forms: 7d, 15, ...)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit counts as JSON")

	return cmd
}

func printReportJSON(cmd *cobra.Command, report distraction.Report) error {
	type dto struct {
		Window  string         `json:"window"`
		Since   string         `json:"since"`
		Counts  map[string]int `json:"counts"`
		Total   int            `json:"total"`
		Skipped int            `json:"skipped"`
	}

	counts := make(map[string]int, len(report.Counts))
	for _, c := range distraction.Categories() {
		counts[string(c)] = report.Count(c)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto{
		Window:  report.Window.Label,
		Since:   report.Since.Format("2006-01-02T15:04:05Z07:00"),
		Counts:  counts,
		Total:   report.Total,
		Skipped: report.Skipped,
	})
}
