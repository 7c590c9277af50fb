package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/files"
)

func newHistoryCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		limitFlag  int
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the most recent distractions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, cfg, err := openJournal(manager)
			if err != nil {
				return err
			}

			limit := limitFlag
			if limit <= 0 {
				limit = cfg.HistoryLimit
			}

			snapshot, err := journal.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if snapshot.Status == distraction.StatusCorrupt {
				log.Printf("history: ignoring unreadable journal %s: %v", journal.Path(), snapshot.Err)
			}

			if outputJSON {
				entries := snapshot.Entries
				if entries == nil {
					entries = []distraction.Entry{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if snapshot.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No distractions logged.")
				return nil
			}
			printEntries(cmd.OutOrStdout(), snapshot.Entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Number of entries to show (default: history_limit from config)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit entries as a JSON array")

	return cmd
}
