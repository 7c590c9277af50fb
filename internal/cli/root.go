package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/faizmokh/workwise/internal/files"
	"github.com/faizmokh/workwise/internal/ui"
	"github.com/faizmokh/workwise/internal/version"
)

var errNoTerminal = errors.New("the interactive UI needs a terminal; see `workwise --help` for scriptable commands")

// isTerminal is swapped by tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workwise",
		Short:   "Focus sessions with a distraction journal, in your terminal.",
		Version: version.Short(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNoTerminal
			}

			journal, cfg, err := openJournal(manager)
			if err != nil {
				return err
			}

			if cfg.DebugLog != "" {
				f, err := tea.LogToFile(cfg.DebugLog, "workwise")
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			m := ui.NewModel(ctx, journal, cfg)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newLogCommand(ctx, manager),
		newHistoryCommand(ctx, manager),
		newClearCommand(ctx, manager),
		newReportCommand(ctx, manager),
		newTimerCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.Execute()
}

// Main is a helper used by cmd/workwise/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
