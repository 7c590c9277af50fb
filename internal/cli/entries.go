package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/workwise/internal/distraction"
	"github.com/faizmokh/workwise/internal/files"
)

func newLogCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <category> <note ...>",
		Short: "Record a distraction.",
		Long:  "log appends a distraction to the journal. Category is one of Future, Past or Wishes/Imagination (aliases: wishes, imagination).",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := distraction.ParseCategory(args[0])
			if err != nil {
				return err
			}

			journal, _, err := openJournal(manager)
			if err != nil {
				return err
			}
			if _, err := manager.EnsureBaseDir(); err != nil {
				return err
			}

			entry, err := journal.Append(ctx, category, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", entry)
			return nil
		},
	}

	return cmd
}

func newClearCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire distraction journal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("clear deletes every entry; re-run with --yes to confirm")
			}

			journal, _, err := openJournal(manager)
			if err != nil {
				return err
			}
			if err := journal.Clear(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}
